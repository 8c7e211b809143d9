// Package validation validates configuration structs with go-playground
// struct tags and reports failures as *errors.AppError values.
//
//	type Config struct {
//	    ShellPath string `validate:"required,startswith=/"`
//	}
//	err := validation.Validate(cfg)
package validation
