package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда по ключу нет сохраненного черновика
	ErrDraftNotFound = errors.New("draft.repository: draft not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("draft.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса к хранилищу
	ErrExecQuery = errors.New("draft.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("draft.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации черновика
	ErrEncode = errors.New("draft.repository: failed to encode draft")

	// ErrDecode возвращается, когда сохраненный черновик не удалось разобрать
	ErrDecode = errors.New("draft.repository: failed to decode draft")
)
