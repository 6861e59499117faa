package resolver

func URLForTest(r Resolver, version string) string {
	return r.(*resolver).URL(version)
}
