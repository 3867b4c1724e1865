package classifier

import (
	"math/rand"

	"github.com/safephone/scamscan/internal/model"
)

// Demo fixtures for UI development and manual testing. These are canned
// scenarios, not production logic: DemoWifiScenario is deterministic per
// name, while RandomDemoWifi is explicitly non-deterministic and excluded
// from the engine's determinism guarantees.

// demoWifiStatuses are the canned connection states, one per risk level.
var demoWifiStatuses = map[string]model.WifiStatus{
	"safe":    {SSID: "MiCasa_5G_Segura", IsConnected: true, Encryption: "WPA3"},
	"warning": {SSID: "Cafe_Internet", IsConnected: true, Encryption: "WPA"},
	"danger":  {SSID: "WIFI_GRATIS_PLAZA", IsConnected: true, Encryption: "OPEN"},
}

// DemoWifiScenario returns the classified verdict for a named canned
// scenario ("safe", "warning", or "danger"). Unknown names fall back to
// the safe scenario.
func DemoWifiScenario(name string) model.WifiVerdict {
	status, ok := demoWifiStatuses[name]
	if !ok {
		status = demoWifiStatuses["safe"]
	}
	return NewWifiClassifier().Classify(status)
}

// RandomDemoWifi picks a random canned scenario using the provided source.
func RandomDemoWifi(rng *rand.Rand) model.WifiVerdict {
	names := []string{"safe", "warning", "danger"}
	return DemoWifiScenario(names[rng.Intn(len(names))])
}

// DemoApps returns a small inventory of realistic app records, including
// known-good banking apps and typical scam impersonations, for exercising
// the app classifier without platform enumeration.
func DemoApps() []model.AppRecord {
	return []model.AppRecord{
		{
			ID: "1", Name: "WhatsApp", PackageName: "com.whatsapp",
			Developer: "WhatsApp LLC", IsFromStore: true,
			Permissions: []string{"INTERNET", "CAMERA", "MICROPHONE", "CONTACTS"},
		},
		{
			ID: "2", Name: "Banco Popular Dominicano", PackageName: "com.bancopopular.app",
			Developer: "Banco Popular Dominicano", IsFromStore: true,
			Permissions: []string{"INTERNET", "BIOMETRIC"},
		},
		{
			ID: "3", Name: "Banreservas Movil", PackageName: "com.banreservas.movil",
			Developer: "Banreservas", IsFromStore: true,
			Permissions: []string{"INTERNET", "BIOMETRIC", "CAMERA"},
		},
		{
			ID: "4", Name: "BancoPopular Seguro 2024", PackageName: "com.bancopopular.seguro.fake",
			Developer: "Developer2024RD", IsFromStore: false,
			Permissions: []string{"INTERNET", "READ_SMS", "SEND_SMS", "READ_CONTACTS"},
		},
		{
			ID: "5", Name: "Banreservas Premium", PackageName: "com.banreservas.premium.fake",
			Developer: "AppsDominicanas", IsFromStore: false,
			Permissions: []string{"INTERNET", "READ_SMS", "BIND_ACCESSIBILITY_SERVICE"},
		},
		{
			ID: "6", Name: "Claro Megas Gratis", PackageName: "com.claro.megas.gratis",
			Developer: "PromoRD2024", IsFromStore: false,
			Permissions: []string{"INTERNET", "READ_SMS", "SEND_SMS"},
		},
		{
			ID: "7", Name: "Limpiador Memoria RD", PackageName: "com.memory.cleaner.rd",
			Developer: "CleanApps Inc", IsFromStore: true,
			Permissions: []string{"INTERNET", "READ_CONTACTS"},
		},
	}
}
