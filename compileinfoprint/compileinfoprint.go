// compileinfoprint is imported for the side effect of printing the build
// information of the sampleidentity binaries to os.Stderr at start-up.
package compileinfoprint

import "github.com/carbocation/sampleidentity/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
