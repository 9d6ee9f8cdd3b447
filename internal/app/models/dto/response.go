package dto

// MessageResponse is the plain message envelope used by list failures and
// by every delete outcome. The 400 "failed to delete data." body and the
// 200 deleted body differ only in this message, and clients key off the
// exact strings.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteRequest carries the id of the record to delete. The same id also
// appears as a path parameter; the body wins when both are present.
type DeleteRequest struct {
	ID int64 `json:"id"`
}

// UploadErrorResponse is the envelope for create failures on the
// photo-carrying entities: missing file, remote upload failure, or a store
// failure after a successful upload.
type UploadErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
