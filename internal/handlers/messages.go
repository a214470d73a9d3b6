package handlers

// Komunikaty API, zachowane dosłownie dla zgodności z istniejącymi klientami
const (
	msgAddSuccess       = "Buku berhasil ditambahkan"
	msgAddMissingName   = "Gagal menambahkan buku. Mohon isi nama buku"
	msgAddReadPage      = "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount"
	msgAddFailed        = "Buku gagal ditambahkan"
	msgNotFound         = "Buku tidak ditemukan"
	msgUpdateSuccess    = "Buku berhasil diperbarui"
	msgUpdateMissing    = "Gagal memperbarui buku. Mohon isi nama buku"
	msgUpdateReadPage   = "Gagal memperbarui buku. readPage tidak boleh lebih besar dari pageCount"
	msgUpdateNotFound   = "Gagal memperbarui buku. Id tidak ditemukan"
	msgDeleteSuccess    = "Buku berhasil dihapus"
	msgDeleteNotFound   = "Buku gagal dihapus. Id tidak ditemukan"
	msgPayloadTooLarge  = "Payload terlalu besar"
	msgRouteNotFound    = "Halaman tidak ditemukan"
	msgMethodNotAllowed = "Metode tidak diizinkan"
	msgInternal         = "Terjadi kegagalan pada server kami"
)
