package textgen

import "context"

// TextGenerator produces suggested product-description copy. Failures never
// block catalog mutations; the helper is a pre-save convenience only.
type TextGenerator interface {
	GenerateDescription(ctx context.Context, productName string, keywords string) (text string, err error)
}
