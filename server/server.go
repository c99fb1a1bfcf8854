package server

import (
	"campusflow/api/realtime"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

var ServerStatus string = "unknown"

func BackendServer(
	db *gorm.DB,
	host string,
	port int64,
	debug bool,
	ssl bool,
	qrSecret string,
	uploadDir string,
) (*http.Server, *realtime.Broadcaster, string) {
	var protocol string

	broadcaster := realtime.NewBroadcaster()
	router := BackendRouting(db, broadcaster, qrSecret, uploadDir)

	if ssl {
		protocol = "https"
	} else {
		protocol = "http"
	}

	fullHost := fmt.Sprintf("%s://%s:%d", protocol, host, port)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", host, port),
		Handler: router,
	}

	return server, broadcaster, fullHost
}
