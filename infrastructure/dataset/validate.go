package dataset

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func rowValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRow valida a linha tipada e traduz os erros do validator para uma mensagem curta por campo
func ValidateRow(row any) error {
	err := rowValidator().Struct(row)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s falhou em %s=%s (valor %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			continue
		}
		messages = append(messages, fmt.Sprintf("%s falhou em %s", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%s", strings.Join(messages, "; "))
}
