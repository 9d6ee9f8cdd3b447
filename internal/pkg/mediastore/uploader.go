package mediastore

import "context"

// Uploader forwards an in-memory image to a remote media host and returns
// the public URL under which it is reachable. The folder is a logical
// grouping on the remote side ("faculty", "gallery"); it carries no meaning
// locally. Implementations are synchronous and do not retry.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)
}
