package cli

// LogFileOpen reports whether a command left its log file open.
func LogFileOpen() bool {
	return openLog != nil
}
