package phase

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Provider supplies an alternate phase list for a theme. An empty result means
// "use the standard phases". Implementations are opaque to the engine.
type Provider interface {
	Phases(theme string) ([]Phase, error)
}

// HTTPProvider fetches themed phases from an external generation service.
type HTTPProvider struct {
	URL    string
	Client *http.Client
}

func NewHTTPProvider(serviceURL string) *HTTPProvider {
	return &HTTPProvider{
		URL:    serviceURL,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *HTTPProvider) Phases(theme string) ([]Phase, error) {
	resp, err := p.Client.Get(p.URL + "?theme=" + url.QueryEscape(theme))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("phase service status %d", resp.StatusCode)
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var out struct {
		Phases []Phase `json:"phases"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out.Phases, nil
}

// Resolve asks the provider for a themed list and degrades to the standard
// phases on any failure, empty result, or malformed shape. Provider trouble is
// never fatal to the game.
func Resolve(p Provider, theme string) []Phase {
	if p == nil || theme == "" {
		return Standard()
	}
	phases, err := p.Phases(theme)
	if err != nil {
		log.Errorf("phase provider failed for theme %s: %v, using standard phases\n", theme, err)
		return Standard()
	}
	if len(phases) == 0 {
		return Standard()
	}
	if !Valid(phases) {
		log.Errorf("phase provider returned malformed list for theme %s, using standard phases\n", theme)
		return Standard()
	}
	return phases
}
