package code

// 通用错误（1000xx）。
const (
	// ErrSuccess - 200: OK.
	ErrSuccess int = iota + 100001

	// ErrUnknown - 500: Internal server error.
	ErrUnknown

	// ErrBind - 422: Error occurred while binding the request body to the struct.
	ErrBind

	// ErrValidation - 422: Validation failed.
	ErrValidation

	// ErrPageNotFound - 404: Page not found.
	ErrPageNotFound

	// ErrMethodNotAllowed - 405: Method not allowed.
	ErrMethodNotAllowed
)

// 存储相关错误（1001xx）。
const (
	// ErrDatabase - 500: Database error.
	ErrDatabase int = iota + 100101

	// ErrStoreUnavailable - 503: Store unavailable.
	ErrStoreUnavailable
)

// 用户模块错误（1100xx）。
const (
	// ErrUserNotFound - 404: User not found.
	ErrUserNotFound int = iota + 110001
)

func init() {
	register(ErrSuccess, 200, "OK")
	register(ErrUnknown, 500, "Internal server error")
	register(ErrBind, 422, "Error occurred while binding the request body to the struct")
	register(ErrValidation, 422, "Validation failed")
	register(ErrPageNotFound, 404, "Not Found")
	register(ErrMethodNotAllowed, 405, "Method Not Allowed")

	register(ErrDatabase, 500, "Database error")
	register(ErrStoreUnavailable, 503, "Store unavailable")

	register(ErrUserNotFound, 404, "User not found")
}
