// SPDX-License-Identifier: MPL-2.0

package convert

import "errors"

// ErrMissingEnvironmentPath is returned by DefaultItemFactory for info
// without a resource locator.
var ErrMissingEnvironmentPath = errors.New("environment info has no environment path")

type (
	// ItemFactory materializes converted info into the host's environment
	// item. It is the host capability the converter consumes.
	ItemFactory interface {
		CreateEnvironmentItem(info EnvironmentInfo, manager Manager) (*Environment, error)
	}

	// ItemFactoryFunc adapts a function to ItemFactory.
	ItemFactoryFunc func(info EnvironmentInfo, manager Manager) (*Environment, error)

	defaultItemFactory struct{}
)

// CreateEnvironmentItem calls f.
func (f ItemFactoryFunc) CreateEnvironmentItem(info EnvironmentInfo, manager Manager) (*Environment, error) {
	return f(info, manager)
}

// NewDefaultItemFactory returns the factory used when the host supplies none.
// The environment ID is the locator string, i.e. the record key.
func NewDefaultItemFactory() ItemFactory {
	return defaultItemFactory{}
}

func (defaultItemFactory) CreateEnvironmentItem(info EnvironmentInfo, manager Manager) (*Environment, error) {
	if info.EnvironmentPath == nil {
		return nil, ErrMissingEnvironmentPath
	}
	return &Environment{
		EnvironmentInfo: info,
		EnvID: EnvironmentID{
			ID:        info.EnvironmentPath.String(),
			ManagerID: manager.Name,
		},
	}, nil
}
