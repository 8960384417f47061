package utils

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// SitemapEntry is a generated page, addressed relative to the output root.
type SitemapEntry struct {
	Lang string
	Name string
}

func WriteSitemap(path, origin string, entries []SitemapEntry, now time.Time) error {
	xmlOutput, err := GenerateSitemapContent(origin, entries, now)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(xmlOutput)

	if err := atomic.WriteFile(path, &buf); err != nil {
		return errors.Wrapf(err, "writing sitemap %s", path)
	}
	return nil
}

func GenerateSitemapContent(origin string, entries []SitemapEntry, now time.Time) (string, error) {
	baseURL := strings.TrimRight(origin, "/")
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	for _, entry := range entries {
		url := Url{
			Loc:     baseURL + "/" + entry.Lang + "/" + strings.TrimLeft(entry.Name, "/"),
			LastMod: now.Format("2006-01-02"),
		}
		sitemap.Urls = append(sitemap.Urls, url)
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}
