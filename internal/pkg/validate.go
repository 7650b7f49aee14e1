package pkg

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	PasswordMinLen = 6
	PasswordMaxLen = 100
	NameMinLen     = 2
)

// TrimName 去掉首尾空白后再校验长度，binding 的 min 只看原始字符串
func TrimName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < NameMinLen {
		return "", ErrInvalidInput("name", fmt.Sprintf("Name should be at least %d characters.", NameMinLen))
	}
	return name, nil
}

// PasswordProblems 返回密码不满足的规则，空切片表示通过
func PasswordProblems(password string) []string {
	var problems []string
	n := utf8.RuneCountInString(password)
	if n < PasswordMinLen {
		problems = append(problems, fmt.Sprintf("Password should be at least %d characters.", PasswordMinLen))
	}
	if n > PasswordMaxLen {
		problems = append(problems, fmt.Sprintf("Password should be at most %d characters.", PasswordMaxLen))
	}

	var upper, lower, digit, symbol, space bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			symbol = true
		}
	}
	if !upper {
		problems = append(problems, "Password must have an uppercase letter.")
	}
	if !lower {
		problems = append(problems, "Password must have a lowercase letter.")
	}
	if !symbol {
		problems = append(problems, "Password must have a symbol.")
	}
	if !digit {
		problems = append(problems, "Password must have a digit.")
	}
	if space {
		problems = append(problems, "Password must not contain spaces.")
	}
	return problems
}

var registerOnce sync.Once

// RegisterValidators 给 gin 的校验器注册 password 规则和 json 字段名，可重复调用
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return len(PasswordProblems(fl.Field().String())) == 0
		})
	})
}

// BindError 把 ShouldBind 的错误转成逐字段的 INVALID_INPUT
func BindError(err error) *AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrInvalidInput("body", "Invalid request body.")
	}

	out := &AppError{Status: ErrInvalidInput("", "").Status}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Param:   fe.Field(),
			Message: fieldMessage(fe),
			Code:    CodeInvalidInput,
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	label := fe.Field()
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}

	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s is required.", label)
		}
		return "Invalid input."
	case "min":
		return fmt.Sprintf("%s should be at least %s characters.", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s should be at most %s characters.", label, fe.Param())
	case "email":
		return "Please provide a valid email address."
	case "password":
		s, _ := fe.Value().(string)
		return strings.Join(PasswordProblems(s), " ")
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
