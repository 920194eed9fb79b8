package cascade

import "github.com/lumoslabs/envflow/pkg/flow"

// Cascade is an github.com/lumoslabs/envflow/pkg/environ.Provider which loads the .env* files cascade
// selected by its flow.Options into an environ.Environ
type Cascade struct {
	flow.Options
}
