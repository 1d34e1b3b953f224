package server

import (
	"fmt"
	"log"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// handleQR 返回加入地址的二维码 PNG，方便同一局域网的手机扫码加入
func (s *Server) handleQR(w http.ResponseWriter, _ *http.Request) {
	joinURL := s.config.Server.PublicURL
	if joinURL == "" {
		joinURL = fmt.Sprintf("ws://%s:%d/ws", s.config.Server.Host, s.config.Server.Port)
	}

	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		log.Printf("二维码生成失败: %v", err)
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
