// Command qmakepatch rewrites the install paths and version string compiled
// into a QMake executable, without external qt.conf files.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:]))
}
