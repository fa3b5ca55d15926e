package phase_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackson-harris-iii/inifinite-phase-game/phase"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func themedList() []phase.Phase {
	phases := phase.Standard()
	phases[0].Requirements = []phase.Requirement{{Kind: phase.Color, Count: 4}, {Kind: phase.Set, Count: 2}}
	return phases
}

func TestHTTPProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "space pirates", r.URL.Query().Get("theme"))
		body, _ := jsoniter.Marshal(map[string]interface{}{"phases": themedList()})
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	provider := phase.NewHTTPProvider(srv.URL)
	phases, err := provider.Phases("space pirates")
	require.NoError(t, err)
	require.Len(t, phases, 10)
	assert.Equal(t, phase.Color, phases[0].Requirements[0].Kind)
}

func TestResolve(t *testing.T) {
	t.Run("uses_provider_list_when_well_formed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := jsoniter.Marshal(map[string]interface{}{"phases": themedList()})
			_, _ = w.Write(body)
		}))
		defer srv.Close()

		phases := phase.Resolve(phase.NewHTTPProvider(srv.URL), "space pirates")
		assert.Equal(t, phase.Color, phases[0].Requirements[0].Kind)
	})

	t.Run("service_error_degrades_to_standard", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		assert.Equal(t, phase.Standard(), phase.Resolve(phase.NewHTTPProvider(srv.URL), "space pirates"))
	})

	t.Run("empty_result_means_standard", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"phases":[]}`)
		}))
		defer srv.Close()

		assert.Equal(t, phase.Standard(), phase.Resolve(phase.NewHTTPProvider(srv.URL), "space pirates"))
	})

	t.Run("malformed_shape_degrades_to_standard", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"phases":[{"number":1,"requirements":[{"kind":"LADDER","count":3}]}]}`)
		}))
		defer srv.Close()

		assert.Equal(t, phase.Standard(), phase.Resolve(phase.NewHTTPProvider(srv.URL), "space pirates"))
	})

	t.Run("unreachable_service_degrades_to_standard", func(t *testing.T) {
		assert.Equal(t, phase.Standard(), phase.Resolve(phase.NewHTTPProvider("http://127.0.0.1:1/phases"), "space pirates"))
	})

	t.Run("no_theme_means_standard", func(t *testing.T) {
		assert.Equal(t, phase.Standard(), phase.Resolve(nil, ""))
	})
}
