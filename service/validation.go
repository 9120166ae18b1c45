package application

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"dogwalking_service/errors"
)

// invalidRequest maps a create-request validation failure onto the parse
// error kind, naming the first offending field.
func invalidRequest(err error) error {
	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return errors.NewParseError("Invalid value for field "+first.Field()).
			ForField(first.Field(), fmt.Sprintf("%v", first.Value()))
	}
	return errors.NewParseError(err.Error())
}
