package config

import "os"

func IsDebug() bool {
	return os.Getenv("MEMGRAPH_DEBUG") == "1"
}
