package auth

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"parqueo-pagos/config"
	"parqueo-pagos/internal/domain/parking"
)

var mirrorHTTP = &http.Client{Timeout: 10 * time.Second}

// mirrorClient pushes a newly registered client to the external ticketing
// system when ORIGIN_API_URL is configured. Failures are logged, never
// surfaced to the registration response.
func mirrorClient(cliente *parking.Cliente) {
	if config.ORIGIN_API_URL == "" {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"id_cliente": cliente.IDCliente,
		"nombre":     cliente.Nombre,
	})
	if err != nil {
		log.Println("Error serializing mirror client:", err)
		return
	}

	url := strings.TrimRight(config.ORIGIN_API_URL, "/") + "/clientes"
	resp, err := mirrorHTTP.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Println("Error mirroring client to origin API:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("Origin API rejected client mirror: status %d", resp.StatusCode)
	}
}
