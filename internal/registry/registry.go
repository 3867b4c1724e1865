package registry

import (
	"strings"

	"github.com/safephone/scamscan/internal/model"
)

// officialBankDomains lists the domains operated by banks recognized in
// the Dominican Republic, including known secondary domains. Subdomains of
// these entries are also considered official.
var officialBankDomains = []string{
	// Major banks
	"banreservas.com",
	"banreservas.com.do",
	"popularenlinea.com",
	"bancopopular.com.do",
	"bpd.com.do",
	"bpservices.com",
	"bhd.com.do",
	"bhdleon.com.do",
	"bsc.com.do",
	"scotiabank.com",
	"scotiabank.com.do",
	"banesco.com.do",
	"bancolafise.com",
	"bancolafise.com.do",
	"bancocaribe.com.do",
	"blh.com.do",
	"bdi.com.do",
	"apap.com.do",
	"acap.com.do",
	"lanacional.com.do",
	"bagricola.gob.do",
	"bandex.com.do",
	"bancoademi.com.do",
	"cibao.com.do",
	"promerica.com.do",
	"bv.com.do",
	"banviv.com.do",
	"bancovimencaservicios.com",
	"lafise.com",
	"banfondesa.com.do",
	"motorcredito.com.do",
	"alaver.com.do",
	"adopem.com.do",
	"adap.com.do",
	// Institutional reference
	"citi.com",
}

// officialInstitutionDomains lists non-bank institutions whose brands are
// commonly impersonated in local scams (telecom promos, tax and subsidy
// schemes). They exempt legitimate sites from the impersonation patterns
// but do not make an email sender "official".
var officialInstitutionDomains = []string{
	"claro.com.do",
	"altice.com.do",
	"viva.com.do",
	"dgii.gov.do",
	"tss.gob.do",
}

// officialSenderEmails lists exact sender addresses used by banks for
// customer communication. An exact match short-circuits every other email
// heuristic.
var officialSenderEmails = []string{
	// Banreservas
	"contacto@banreservas.com",
	"mensajealadministrador@banreservas.com",
	// Banco Popular Dominicano
	"contactenos@bpd.com.do",
	"reclamaciones@bpd.com.do",
	"vozdelcliente@bpd.com.do",
	// Banco BHD
	"servicioalcliente@bhd.com.do",
	"servicioalcliente@bhdleon.com.do",
	// Scotiabank RD
	"drinfo@scotiabank.com",
	"serviciosamex@scotiabank.com",
	"afiliacionamex@scotiabank.com",
	// APAP
	"servicioalcliente@apap.com.do",
	"candidatos@apap.com.do",
	// Banco Santa Cruz
	"vacantes@bsc.com.do",
	// Asociacion Cibao
	"info@cibao.com.do",
	"empleos@cibao.com",
	// Banco Promerica
	"servicio@promerica.com.do",
	"gestionhumana@promerica.com.do",
	// Banco Caribe
	"servicio@bancocaribe.com.do",
	"empleos@bancocaribe.com",
	// Banesco
	"tuvoz@banesco.com.do",
	"defensor_del_cliente@banesco.com",
	// BDI
	"bdiinforma@bdi.com.do",
	"bdimercadeo@bdi.com.do",
	"phishing@bdi.com.do",
	// Ademi
	"info@ademi.com.do",
	// La Nacional (ALNAP)
	"info@alnap.com.do",
	// Bagricola
	"bagricola@bagricola.gob.do",
	// Bandex
	"negocios@bandex.com.do",
	"gente@bandex.com",
	// BLH
	"info@blh.com.do",
	// Citibank RD
	"citiservicedominicana@citi.com",
	// Banco Vimenca
	"teleasistencia@bv.com.do",
	"info@bancovimencaservicios.com",
	// Lafise
	"servicioalclienterd@lafise.com",
	// Banfondesa
	"info@banfondesa.com.do",
	// Motor Credito
	"info@motorcredito.com.do",
	// Alaver
	"contacto@alaver.com.do",
	"vacantes@alaver.com.do",
	// Adopem
	"info@adopem.com.do",
	"empleo@adopem.com.do",
	"servicioalusuario@adopem.com.do",
	"vozdelcliente@adopem.com.do",
	// Asociacion Duarte (ADAP)
	"contacto@adap.com.do",
}

// Contact is an official bank customer-service line.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Site  string `json:"site"`
}

// officialContacts lists verified customer-service numbers. The phone
// classifier uses these to recognize legitimate bank calls.
var officialContacts = []Contact{
	{Name: "Banreservas", Phone: "809-960-2121", Site: "https://www.banreservas.com"},
	{Name: "Banco Popular", Phone: "809-544-5555", Site: "https://www.popularenlinea.com"},
	{Name: "BHD Leon", Phone: "809-243-5050", Site: "https://www.bhdleon.com.do"},
	{Name: "Scotiabank RD", Phone: "809-567-7268", Site: "https://www.scotiabank.com.do"},
	{Name: "APAP", Phone: "809-689-2727", Site: "https://www.apap.com.do"},
	{Name: "Banco Caribe", Phone: "809-473-2100", Site: "https://www.bancocaribe.com.do"},
	{Name: "Banco Santa Cruz", Phone: "809-541-1000", Site: "https://www.bsc.com.do"},
	{Name: "BLH (Lopez de Haro)", Phone: "809-563-2400", Site: "https://www.blh.com.do"},
	{Name: "BDI", Phone: "809-689-3131", Site: "https://www.bdi.com.do"},
	{Name: "La Nacional", Phone: "809-731-3333", Site: "https://www.lanacional.com.do"},
	{Name: "ACAP", Phone: "809-581-5001", Site: "https://www.acap.com.do"},
}

// Site is a verified banking portal surfaced to users as a safe
// alternative to a suspicious link.
type Site struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// safeBankingSites lists the main online-banking portals.
var safeBankingSites = []Site{
	{Name: "Banreservas", URL: "https://www.banreservas.com"},
	{Name: "Popular en Linea", URL: "https://www.popularenlinea.com"},
	{Name: "Banco Popular (portal)", URL: "https://www.bancopopular.com.do"},
	{Name: "BHD", URL: "https://www.bhd.com.do"},
	{Name: "Banco Santa Cruz", URL: "https://www.bsc.com.do"},
	{Name: "Scotiabank RD", URL: "https://do.scotiabank.com"},
	{Name: "Banesco RD", URL: "https://www.banesco.com.do"},
	{Name: "Banco Lafise RD", URL: "https://www.bancolafise.com.do"},
	{Name: "Banco Caribe", URL: "https://www.bancocaribe.com.do"},
	{Name: "Banco Lopez de Haro", URL: "https://www.blh.com.do"},
	{Name: "APAP", URL: "https://www.apap.com.do"},
	{Name: "ACAP", URL: "https://www.acap.com.do"},
	{Name: "La Nacional", URL: "https://www.lanacional.com.do"},
	{Name: "Bagricola", URL: "https://www.bagricola.gob.do"},
	{Name: "Bandex", URL: "https://www.bandex.com.do"},
	{Name: "ADEMI", URL: "https://www.bancoademi.com.do"},
	{Name: "Asociacion Cibao", URL: "https://www.cibao.com.do"},
	{Name: "Promerica", URL: "https://www.promerica.com.do"},
	{Name: "Vimenca", URL: "https://www.bv.com.do"},
	{Name: "Lafise", URL: "https://www.lafise.com"},
	{Name: "Banfondesa", URL: "https://www.banfondesa.com.do"},
	{Name: "Motor Credito", URL: "https://www.motorcredito.com.do"},
	{Name: "Alaver", URL: "https://www.alaver.com.do"},
	{Name: "Adopem", URL: "https://www.adopem.com.do"},
	{Name: "Asociacion Duarte (ADAP)", URL: "https://www.adap.com.do"},
}

// Registry provides read-only lookups against the official-entity tables.
// All data is fixed at construction; there is no runtime mutation.
type Registry struct {
	bankDomains        []string
	institutionDomains []string
	senders            map[string]bool
	contactsByNumber   map[string]Contact
	contacts           []Contact
}

// Option customizes a Registry at construction time. Extra entries come
// from the user's config file and are merged once; the registry stays
// immutable afterwards.
type Option func(*options)

type options struct {
	extraDomains  []string
	extraSenders  []string
	extraContacts []Contact
}

// WithExtraDomains adds user-supplied official domains.
func WithExtraDomains(domains []string) Option {
	return func(o *options) { o.extraDomains = append(o.extraDomains, domains...) }
}

// WithExtraSenders adds user-supplied official sender addresses.
func WithExtraSenders(senders []string) Option {
	return func(o *options) { o.extraSenders = append(o.extraSenders, senders...) }
}

// WithExtraContacts adds user-supplied official contact numbers.
func WithExtraContacts(contacts []Contact) Option {
	return func(o *options) { o.extraContacts = append(o.extraContacts, contacts...) }
}

// New builds a Registry from the compiled-in tables plus any options.
func New(opts ...Option) *Registry {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		bankDomains:        make([]string, 0, len(officialBankDomains)+len(o.extraDomains)),
		institutionDomains: officialInstitutionDomains,
		senders:            make(map[string]bool, len(officialSenderEmails)+len(o.extraSenders)),
		contactsByNumber:   make(map[string]Contact, len(officialContacts)+len(o.extraContacts)),
	}

	for _, d := range officialBankDomains {
		r.bankDomains = append(r.bankDomains, strings.ToLower(d))
	}
	for _, d := range o.extraDomains {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			r.bankDomains = append(r.bankDomains, d)
		}
	}

	for _, s := range officialSenderEmails {
		r.senders[model.NormalizeEmail(s)] = true
	}
	for _, s := range o.extraSenders {
		if s = model.NormalizeEmail(s); s != "" {
			r.senders[s] = true
		}
	}

	r.contacts = append(r.contacts, officialContacts...)
	r.contacts = append(r.contacts, o.extraContacts...)
	for _, c := range r.contacts {
		if num := model.NormalizePhone(c.Phone); num != "" {
			r.contactsByNumber[num] = c
		}
	}

	return r
}

// IsSubdomainOf reports whether candidate equals root or is a dot-separated
// subdomain of it. "x.banreservas.com" qualifies under "banreservas.com";
// "evilbanreservas.com" does not.
func IsSubdomainOf(candidate, root string) bool {
	return candidate == root || strings.HasSuffix(candidate, "."+root)
}

// IsOfficialDomain reports whether the lowercased domain is an official
// bank domain or a subdomain of one.
func (r *Registry) IsOfficialDomain(domain string) bool {
	for _, official := range r.bankDomains {
		if IsSubdomainOf(domain, official) {
			return true
		}
	}
	return false
}

// IsRecognizedDomain reports whether the domain belongs to any recognized
// entity: banks plus the telecom and government institutions whose brands
// appear in the impersonation patterns. Used by the URL classifier to
// exempt legitimate sites before pattern matching.
func (r *Registry) IsRecognizedDomain(domain string) bool {
	if r.IsOfficialDomain(domain) {
		return true
	}
	for _, official := range r.institutionDomains {
		if IsSubdomainOf(domain, official) {
			return true
		}
	}
	return false
}

// OfficialDomains returns a copy of the official bank domain list.
func (r *Registry) OfficialDomains() []string {
	out := make([]string, len(r.bankDomains))
	copy(out, r.bankDomains)
	return out
}

// IsOfficialSender reports whether the address exactly matches a
// registered official sender.
func (r *Registry) IsOfficialSender(email string) bool {
	return r.senders[model.NormalizeEmail(email)]
}

// OfficialContact looks up a normalized phone number among the registered
// customer-service lines.
func (r *Registry) OfficialContact(normalizedNumber string) (Contact, bool) {
	c, ok := r.contactsByNumber[normalizedNumber]
	return c, ok
}

// Contacts returns a copy of the official contact list.
func (r *Registry) Contacts() []Contact {
	out := make([]Contact, len(r.contacts))
	copy(out, r.contacts)
	return out
}

// SafeBankingSites returns the curated list of verified banking portals.
func SafeBankingSites() []Site {
	out := make([]Site, len(safeBankingSites))
	copy(out, safeBankingSites)
	return out
}
