package apperror

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	codigoPattern     = regexp.MustCompile(`^[A-Z][A-Z0-9_]{1,49}$`)
	diasSemanaPattern = regexp.MustCompile(`^[01]{7}$`)
	hhmmPattern       = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)
)

func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	Register(v)
}

// Register installs the json tag name func and the console's custom tags on v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("codigo", matchPattern(codigoPattern))
	_ = v.RegisterValidation("dias_semana", matchPattern(diasSemanaPattern))
	_ = v.RegisterValidation("hhmm", matchPattern(hhmmPattern))
}

func matchPattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return re.MatchString(s)
	}
}

// ValidCodigo reports whether s is an acceptable record code.
func ValidCodigo(s string) bool {
	return codigoPattern.MatchString(s)
}
