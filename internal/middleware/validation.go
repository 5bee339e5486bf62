package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	pkgvalidator "github.com/jwalitptl/clinic-tracker/pkg/validator"
)

// RegisterValidators installs the catalog tags on gin's binding engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}

	phases := make([]string, len(model.Phases))
	for i, p := range model.Phases {
		phases[i] = p.Name
	}

	return pkgvalidator.Register(v, map[string]validator.Func{
		"department": pkgvalidator.OneOf(model.Departments),
		"phase":      pkgvalidator.OneOf(phases),
		"taskstatus": pkgvalidator.OneOf(model.Statuses),
		"role":       pkgvalidator.OneOf(model.Roles),
	})
}
