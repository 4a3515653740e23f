// Package aocsite downloads puzzle inputs from the Advent of Code site.
package aocsite

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("aocsite")

const defaultBaseURL = "https://adventofcode.com"

// Client downloads puzzle inputs authenticated by a session token.
type Client struct {
	session    string
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client using the given session token.
func NewClient(session string) *Client {
	return &Client{
		session:    session,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

// DownloadInput fetches one day's input and writes it to w.
func (c *Client) DownloadInput(year, day int, w io.Writer) error {
	if c.session == "" {
		return fmt.Errorf("no session token configured; set AOC_SESSION or the session config key")
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day)
	log.Infof("downloading input for day %d from %s", day, url)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download input: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download input: unexpected status %s", resp.Status)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("download input: %w", err)
	}
	return nil
}

// FetchInputFile downloads one day's input into the file at path,
// creating parent directories as needed.
func (c *Client) FetchInputFile(year, day int, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := c.DownloadInput(year, day, f); err != nil {
		os.Remove(path)
		return err
	}
	log.Infof("wrote %s", path)
	return nil
}
