package flow

import "fmt"

// FileAccessError means a file could not be read or decoded from its text encoding
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("unable to read file %s: %s", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError means the contents of a file are not valid dotenv
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse file %s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NoFilesFoundError means none of the files of a cascade exist
type NoFilesFoundError struct {
	Dir     string
	Pattern string
}

func (e *NoFilesFoundError) Error() string {
	return fmt.Sprintf(`no ".env*" files matching pattern "%s" in "%s" dir`, e.Pattern, e.Dir)
}

// PatternError means a naming pattern is malformed
type PatternError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q at offset %d: %s", e.Pattern, e.Pos, e.Msg)
}
