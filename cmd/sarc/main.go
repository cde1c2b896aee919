// Command sarc lists and extracts SARC archives, including Yaz0 and zstd
// wrapped ones.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
