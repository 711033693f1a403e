//go:build windows

package path

func AfterGetAbsPath(path string) (string, error) {
	return path, nil
}
