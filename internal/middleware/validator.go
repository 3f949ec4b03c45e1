package middleware

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/campus-wellness-api/internal/models"
)

var registerOnce sync.Once

// RegisterValidators adds the "mood" and "trigger" binding tags to gin's validator.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err = v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
			return models.Mood(fl.Field().String()).Valid()
		}); err != nil {
			return
		}
		err = v.RegisterValidation("trigger", func(fl validator.FieldLevel) bool {
			return models.Trigger(fl.Field().String()).Valid()
		})
	})
	return err
}
