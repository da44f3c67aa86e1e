package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"howtogen/internal/errors"
	"howtogen/internal/logger"
)

var errNotConfirmed = errors.New("explicit agreement was not given")

// Creates the destination directory and empties it when it already holds files.
// Without force the user has to confirm the removal first.
func prepareDestination(path string, force bool, in io.Reader, out io.Writer) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return errors.Wrapf(err, "creating destination %s", path)
	}

	directory, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening destination %s", path)
	}
	defer directory.Close()

	_, err = directory.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "reading destination %s", path)
	}

	if !force {
		fmt.Fprintf(out, "Output directory %s is not empty. Continuation will result in removing all its files. Proceed? [y/N] ", path)
		response, _ := bufio.NewReader(in).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(response)); answer != "y" && answer != "yes" {
			return errors.WithHint(errNotConfirmed, "rerun with --force-clean-output to skip the question")
		}
	}

	logger.Logger.Infow("Cleaning output directory", "path", path)
	entries, err := os.ReadDir(path)
	if err != nil {
		return errors.Wrapf(err, "reading destination %s", path)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
			return errors.Wrapf(err, "cleaning destination %s", path)
		}
	}
	return nil
}
