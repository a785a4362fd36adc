package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/yeisme/drivevault/pkg/rule"
)

// shareRequest 模拟分享请求的校验规则.
type shareRequest struct {
	Email      string `rule:"required,email"`
	Permission string `rule:"required,oneof=viewer commenter editor"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	valid := shareRequest{Email: "alice@example.com", Permission: "viewer"}

	if err := rule.ValidateStruct(valid); err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 缺少 Email
	if err := rule.ValidateStruct(shareRequest{Permission: "editor"}); err == nil {
		t.Error("Expected error for missing email, got nil")
	}

	// 非法的权限级别
	if err := rule.ValidateStruct(shareRequest{Email: "a@b.com", Permission: "owner"}); err == nil {
		t.Error("Expected error for invalid permission, got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	if err := rule.ValidateVar("test@example.com", "required,email"); err != nil {
		t.Errorf("Expected no error for valid email, got %v", err)
	}

	if err := rule.ValidateVar("invalid-email", "required,email"); err == nil {
		t.Error("Expected error for invalid email, got nil")
	}

	// 文件大小非负
	if err := rule.ValidateVar(int64(0), "gte=0"); err != nil {
		t.Errorf("Expected no error for zero size, got %v", err)
	}

	if err := rule.ValidateVar(int64(-1), "gte=0"); err == nil {
		t.Error("Expected error for negative size, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	// 注册自定义验证：名称不得以斜杠开头
	err := rule.RegisterValidation("itemname", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return len(str) > 0 && str[0] != '/'
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	if err := rule.ValidateVar("report.pdf", "itemname"); err != nil {
		t.Errorf("Expected no error for valid name, got %v", err)
	}

	if err := rule.ValidateVar("/etc/passwd", "itemname"); err == nil {
		t.Error("Expected error for name starting with slash, got nil")
	}
}

// TestRegisterAlias 测试注册别名.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("permission", "oneof=viewer commenter editor")

	if err := rule.ValidateVar("commenter", "permission"); err != nil {
		t.Errorf("Expected no error for valid permission alias, got %v", err)
	}

	if err := rule.ValidateVar("admin", "permission"); err == nil {
		t.Error("Expected error for invalid permission alias, got nil")
	}
}
