package interfaces

import "pgw_comprovantes/internal/domain/document"

// IDocumentEngine abstracts the paginating PDF layout engine.
//
// Any engine that lays the ordered block sequence out into a paginated
// byte stream satisfies the contract; the use case never depends on a
// concrete PDF library.
type IDocumentEngine interface {
	Render(blocks []document.Block) ([]byte, error)
}
