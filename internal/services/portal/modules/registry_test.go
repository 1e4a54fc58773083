package modules

import (
	"testing"

	"github.com/maitri-healthcare/portal/internal/services/portal/integration/api"
)

var _ Backend = (*api.Client)(nil)

func TestDefaultModuleIDs(t *testing.T) {
	t.Parallel()

	client, err := api.New(api.Config{BaseURL: "http://backend.test"})
	if err != nil {
		t.Fatalf("api.New() error = %v", err)
	}
	for _, backend := range []Backend{nil, client} {
		public := DefaultPublicModules(backend)
		if len(public) != 1 || public[0].ID() != "public" {
			t.Fatalf("public modules = %v", public)
		}
		protected := DefaultProtectedModules(backend)
		if len(protected) != 1 || protected[0].ID() != "dashboard" {
			t.Fatalf("protected modules = %v", protected)
		}
	}
}

func TestDefaultModulesMount(t *testing.T) {
	t.Parallel()

	all := append(DefaultPublicModules(nil), DefaultProtectedModules(nil)...)
	for _, m := range all {
		mount, err := m.Mount(Dependencies{})
		if err != nil {
			t.Fatalf("Mount(%s) error = %v", m.ID(), err)
		}
		if mount.Handler == nil {
			t.Fatalf("Mount(%s) handler is nil", m.ID())
		}
	}
}
