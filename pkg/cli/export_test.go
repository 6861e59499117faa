package cli

var (
	PrintResults      = printResults
	PrintRepositories = printRepositories
)
