package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// getFileOrStdin returns the named file, or the command's stdin when name is
// empty, along with the function that closes it.
func getFileOrStdin(cmd *cobra.Command, name string) (io.Reader, func() error, error) {
	if name == "" {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", name)
	}
	return f, f.Close, nil
}

// closeInput runs closeFn. Inputs are only read, so a failure to close is
// logged and otherwise ignored.
func closeInput(log logrus.FieldLogger, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Debugf("closing input: %v", err)
	}
}
