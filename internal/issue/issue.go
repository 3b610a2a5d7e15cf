// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"

	"github.com/charmbracelet/glamour"
)

const (
	// StoreNotFoundID is reported when the shared file does not exist.
	StoreNotFoundID ID = iota + 1
	// StoreUnreadableID is reported when the shared file cannot be read or parsed.
	StoreUnreadableID
	// StoreVersionMismatchID is reported when the shared file has another schema version.
	StoreVersionMismatchID
	// RecordSkippedID is reported when records could not be converted.
	RecordSkippedID
	// EnvironmentNotFoundID is reported when a requested key is not in the store.
	EnvironmentNotFoundID
	// ConfigLoadFailedID is reported when the configuration file is invalid.
	ConfigLoadFailedID
)

type (
	// ID identifies a catalog entry.
	ID int

	// MarkdownMsg is the markdown body of an issue.
	MarkdownMsg string

	// Issue is a help page for one failure condition.
	Issue struct {
		id    ID
		title string
		mdMsg MarkdownMsg
	}
)

var (
	render = glamour.Render

	issues = map[ID]*Issue{
		StoreNotFoundID: {
			id:    StoreNotFoundID,
			title: "No environment store yet",
			mdMsg: `
# No environment store yet

The shared file with WSL environments does not exist. It is written by the
Python environments extension the first time it scans your distributions.

## Things you can try
- Open a workspace in VS Code with the Python extension enabled and let it
  finish discovering WSL interpreters.
- Check the location with:
~~~
$ wslenv path
~~~
- Point wslenv at another file with ` + "`--store`" + ` or ` + "`WSLENV_STORE_PATH`" + `.`,
		},
		StoreUnreadableID: {
			id:    StoreUnreadableID,
			title: "Environment store is unreadable",
			mdMsg: `
# Environment store is unreadable

The shared file exists but could not be read or is not valid JSON. The
producer may have been interrupted while writing it.

## Things you can try
- Trigger a new scan in the extension so the file is rewritten.
- Check the file permissions of the path printed by ` + "`wslenv path`" + `.`,
		},
		StoreVersionMismatchID: {
			id:    StoreVersionMismatchID,
			title: "Unsupported store version",
			mdMsg: `
# Unsupported store version

The shared file was written with a schema version this build does not
understand, so its contents are ignored. Nothing is migrated.

## Things you can try
- Update wslenv and the extension to matching releases.
- Let the extension rescan, which rewrites the file in its current version.`,
		},
		RecordSkippedID: {
			id:    RecordSkippedID,
			title: "Some environments were skipped",
			mdMsg: `
# Some environments were skipped

One or more records in the store are incomplete (for example a virtual
environment without a base directory) and were left out. The remaining
environments are listed normally.

## Things you can try
- Run with ` + "`--verbose`" + ` to see which records failed and why.
- Remove the broken environment from the distribution and rescan.`,
		},
		EnvironmentNotFoundID: {
			id:    EnvironmentNotFoundID,
			title: "Environment not found",
			mdMsg: `
# Environment not found

No record exists for the requested key, or it could not be converted.
Keys look like ` + "`wsl:<distribution>:<interpreter path>`" + `.

## Things you can try
~~~
$ wslenv list
~~~`,
		},
		ConfigLoadFailedID: {
			id:    ConfigLoadFailedID,
			title: "Configuration could not be loaded",
			mdMsg: `
# Configuration could not be loaded

The configuration file failed validation against the built-in schema.

## Things you can try
- Compare your file with the defaults:
~~~
$ wslenv config show
~~~
- Recreate it with ` + "`wslenv config init --force`" + `.`,
		},
	}
)

// ID returns the catalog identifier.
func (i *Issue) ID() ID { return i.id }

// Title returns the one-line summary.
func (i *Issue) Title() string { return i.title }

// MarkdownMsg returns the markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// Render renders the markdown body with the named glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

// Values returns every catalog entry ordered by ID.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the catalog entry for id, or nil.
func Get(id ID) *Issue {
	return issues[id]
}
