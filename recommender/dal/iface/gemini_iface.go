//go:generate mockery --name Gemini --output ../mocks --outpkg mocks --case=underscore
package iface

import "context"

type Gemini interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
