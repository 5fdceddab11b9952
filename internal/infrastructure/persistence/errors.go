package persistence

import (
	"errors"

	"github.com/oksasatya/talenthub/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
