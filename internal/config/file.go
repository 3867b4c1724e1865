package config

import "github.com/safephone/scamscan/internal/registry"

// ContactEntry is a user-supplied official contact line in the config
// file.
type ContactEntry struct {
	// Name is the institution name shown in verdicts.
	Name string `yaml:"name"`

	// Phone is the contact number in any common spelling.
	Phone string `yaml:"phone"`

	// Site is the institution's official website.
	Site string `yaml:"site,omitempty"`
}

// File represents the structure of the .scamscan configuration file.
// Everything in it extends the compiled-in registry; nothing can remove
// a built-in entry.
type File struct {
	// SyncEndpoint is the community sync URL.
	SyncEndpoint string `yaml:"syncEndpoint,omitempty"`

	// ServeAddr overrides the sync server listen address.
	ServeAddr string `yaml:"serveAddr,omitempty"`

	// ExtraDomains are additional domains to treat as official.
	// Useful for regional banks not in the compiled-in tables.
	ExtraDomains []string `yaml:"extraDomains,omitempty"`

	// ExtraSenders are additional email addresses to treat as official.
	ExtraSenders []string `yaml:"extraSenders,omitempty"`

	// ExtraContacts are additional official contact numbers.
	ExtraContacts []ContactEntry `yaml:"extraContacts,omitempty"`
}

// ApplyTo overlays the file's values onto the config. Only fields the
// file actually sets are copied, so flag values survive when the file is
// silent.
func (f *File) ApplyTo(c *Config) {
	if f == nil {
		return
	}
	if f.SyncEndpoint != "" && c.SyncEndpoint == "" {
		c.SyncEndpoint = f.SyncEndpoint
	}
	if f.ServeAddr != "" && c.ServeAddr == DefaultServeAddr {
		c.ServeAddr = f.ServeAddr
	}
	c.File = f
}

// RegistryOptions converts the file's extras into registry options. A
// nil file yields no options.
func (f *File) RegistryOptions() []registry.Option {
	if f == nil {
		return nil
	}

	var opts []registry.Option
	if len(f.ExtraDomains) > 0 {
		opts = append(opts, registry.WithExtraDomains(f.ExtraDomains))
	}
	if len(f.ExtraSenders) > 0 {
		opts = append(opts, registry.WithExtraSenders(f.ExtraSenders))
	}
	if len(f.ExtraContacts) > 0 {
		contacts := make([]registry.Contact, 0, len(f.ExtraContacts))
		for _, e := range f.ExtraContacts {
			contacts = append(contacts, registry.Contact{Name: e.Name, Phone: e.Phone, Site: e.Site})
		}
		opts = append(opts, registry.WithExtraContacts(contacts))
	}
	return opts
}
