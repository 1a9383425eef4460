package writer

import (
	"bufio"
	"io"
	"os"

	"github.com/google/renameio/v2"
)

// replaceFile streams fill into a pending file next to path and renames it
// over path only when fill and the flush succeed. On any error the previous
// file is left as it was and the pending file is removed.
func replaceFile(path string, perm os.FileMode, fill func(out io.Writer) error) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		return err
	}
	defer pending.Cleanup()

	bw := bufio.NewWriterSize(pending, 64*1024)
	if err := fill(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return pending.CloseAtomicallyReplace()
}
