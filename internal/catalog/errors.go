package catalog

import "errors"

var (
	// ErrHallNotFound возвращается для неизвестного идентификатора зала
	ErrHallNotFound = errors.New("catalog: hall not found")

	// ErrInvalidCatalog возвращается при некорректном описании каталога
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")
)
