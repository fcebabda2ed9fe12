package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ElBerserker/apis-sucursal/internal/apierror"

	"gorm.io/gorm"
)

// fechaLayout is the wire format for every date field.
const fechaLayout = "2006-01-02"

// parseFecha converts a YYYY-MM-DD string into a date, failing with a 400
// instead of letting a malformed value reach the store.
func parseFecha(campo, valor string) (time.Time, error) {
	t, err := time.Parse(fechaLayout, valor)
	if err != nil {
		return time.Time{}, apierror.Validation(
			fmt.Sprintf("El campo %s debe tener formato YYYY-MM-DD", campo))
	}
	return t, nil
}

func formatFecha(t time.Time) string { return t.Format(fechaLayout) }

// translateStoreErr maps store failures onto the API error taxonomy so no
// driver error ever reaches a client. Requires the GORM connection to be
// opened with TranslateError.
func translateStoreErr(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierror.NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierror.Conflict("Ya existe un registro con esa clave")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apierror.Conflict("La operación viola una referencia entre tablas")
	default:
		return err
	}
}
