package version

import (
	"testing"

	"libfj/internal/platform/testkit"
)

func TestInfo_Defaults(t *testing.T) {
	testkit.Swap(t, &version, "v1.2.3")
	bi := Info("libfj")
	if bi.Component != "libfj" || bi.Version != "v1.2.3" || bi.Commit != "none" {
		t.Fatalf("unexpected info %+v", bi)
	}
	testkit.MustContain(t, bi.String(), "libfj v1.2.3 (none, unknown)")
}
