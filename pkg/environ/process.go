package environ

import (
	"os"

	"github.com/lumoslabs/envflow/pkg/log"
)

type processEnv struct{}

// NewProcessEnv returns a Store backed by the environment of the current process
func NewProcessEnv() Store { return processEnv{} }

func (processEnv) Load(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (processEnv) Set(key, value string) {
	if er := os.Setenv(key, value); er != nil {
		log.Debugf("Failed to set environment variable. key=%s msg=%s", key, er.Error())
	}
}

func (processEnv) Delete(key string) string {
	v := os.Getenv(key)
	if er := os.Unsetenv(key); er != nil {
		log.Debugf("Failed to unset environment variable. key=%s msg=%s", key, er.Error())
	}
	return v
}
