// Package http provides the outbound HTTP client used to reach the static data host.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient はデータホストからのCSV取得用に設定されたHTTPクライアントを作成します。
//
// 接続先は単一のデータホストのため、ホストあたりのアイドル接続を多めに保持し、
// ウォームアップ時の連続取得で接続を使い回します。
//
// 注意:
//   - http.DefaultClient にはタイムアウトがないため使用しないこと
//   - timeout はレスポンス本文の読み込みまで含むリクエスト全体の上限
//   - timeout が0以下の場合は10秒
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
