package test_utils

func AssertStringSlicesEqual(l []string, r []string) bool {
	if len(l) != len(r) {
		return false
	}
	for i := range l {
		if l[i] != r[i] {
			return false
		}
	}
	return true
}

func AssertUnOrderedStringSlicesEqual(l []string, r []string) bool {
	return AssertStringSetsEqual(stringSliceToSet(l), stringSliceToSet(r))
}

func AssertStringSetsEqual(l map[string]bool, r map[string]bool) bool {
	if len(l) != len(r) {
		return false
	}
	for k := range l {
		if !r[k] {
			return false
		}
	}
	return true
}

func stringSliceToSet(slice []string) map[string]bool {
	m := make(map[string]bool)
	for _, v := range slice {
		m[v] = true
	}
	return m
}
