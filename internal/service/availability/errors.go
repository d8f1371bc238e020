package availability

import "errors"

var (
	// ErrInternal возвращается при ошибках нижележащих слоев (репозитории)
	ErrInternal = errors.New("availability: internal error")
)
