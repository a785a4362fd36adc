// Package main 启动应用程序
package main

import "github.com/yeisme/drivevault/pkg/cmd"

//	@title			DriveVault API
//	@version		1.0
//	@description	DriveVault 是一个云盘后端服务，提供用户注册登录、文件与文件夹管理、共享、评论与活动记录等功能。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
