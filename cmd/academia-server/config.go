package main

type BrowserConfig struct {
	// path to a chromium binary, empty lets the launcher resolve one
	Bin string `json:"bin"`
	// runs the browser with a visible window, for debugging scrapes
	Headful bool `json:"headful"`
}

type PortalConfig struct {
	BaseUrl string `json:"base_url"`
}

type Config struct {
	Port int `json:"port"`
	// optional bearer token guarding every endpoint
	AccessToken string        `json:"access_token"`
	Portal      PortalConfig  `json:"portal"`
	Browser     BrowserConfig `json:"browser"`
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = 8000
	}
}
