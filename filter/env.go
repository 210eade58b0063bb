package filter

import (
	"strings"
	"time"

	"github.com/mediary/cloudctl/admin"
)

// createHelperFunctions creates the static helpers used during compilation.
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Size helpers
	env["kb"] = func(n int) int64 { return int64(n) * 1024 }
	env["mb"] = func(n int) int64 { return int64(n) * 1024 * 1024 }
	// Current time
	env["now"] = time.Now
}

// createRuntimeEnvironment creates the evaluation environment for one
// resource.
func createRuntimeEnvironment(resource admin.Resource) map[string]any {
	env := make(map[string]any, 32)

	addHelperFunctions(env)

	env["Resource"] = resource

	env["hasTag"] = createHasTagFunc(resource.Tags)

	// Direct resource properties for convenience
	env["publicID"] = resource.PublicID
	env["format"] = resource.Format
	env["version"] = resource.Version
	env["resourceType"] = resource.ResourceType
	env["deliveryType"] = resource.Type
	env["createdAt"] = resource.CreatedAt
	env["bytes"] = resource.Bytes
	env["width"] = resource.Width
	env["height"] = resource.Height
	env["url"] = resource.URL
	env["secureURL"] = resource.SecureURL
	env["tags"] = resource.Tags

	return env
}

// createHasTagFunc creates a closure checking tag membership
// case-insensitively.
func createHasTagFunc(tags []string) func(string) bool {
	return func(tag string) bool {
		for _, t := range tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	}
}
