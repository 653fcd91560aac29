package http

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yanqian/medifind/internal/domain/directory"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators installs the custom binding tags on gin's validator engine.
func registerValidators() error {
	validatorsOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		if err := engine.RegisterValidation("searchtype", validateSearchType); err != nil {
			validatorsErr = err
			return
		}
		validatorsErr = engine.RegisterValidation("lang", validateLanguage)
	})
	return validatorsErr
}

func validateSearchType(fl validator.FieldLevel) bool {
	value := directory.SearchType(fl.Field().String())
	_, ok := value.Kind()
	return ok
}

func validateLanguage(fl validator.FieldLevel) bool {
	return directory.Language(fl.Field().String()).Valid()
}

// bindingErrorCode reports invalid_request_kind when the only problem is an
// unrecognised search type.
func bindingErrorCode(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "searchtype" {
				return "invalid_request_kind"
			}
		}
	}
	return "invalid_request"
}
