package response

// Business codes follow HTTP status semantics so the envelope code doubles as
// the response status.
var (
	ErrInvalidRequest     = newError(400, "permintaan tidak valid")
	ErrInvalidCredentials = newError(400, "email atau password salah")
	ErrTokenInvalid       = newError(401, "token tidak valid atau kadaluarsa")
	ErrUnauthorized       = newError(403, "akses ditolak")
	ErrNotFound           = newError(404, "data tidak ditemukan")
	ErrAlreadyExists      = newError(409, "data sudah terdaftar")
	ErrStatusConflict     = newError(409, "perubahan status tidak diizinkan")
	ErrPayloadTooLarge    = newError(413, "ukuran berkas melebihi batas")
	ErrInternal           = newError(500, "terjadi kesalahan server")
	ErrDatabase           = newError(500, "terjadi kesalahan basis data")
	ErrUpstream           = newError(500, "gagal mengambil data dari layanan eksternal")
)
