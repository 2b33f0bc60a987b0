// Package yandexdisk provides a connector for public Yandex.Disk folders.
//
// The public resources API lists a folder shared by link without any
// authentication. Each listed file carries a direct download URL, which the
// connector fetches so the text can be extracted and indexed. Later retrieval
// downloads the file again from the same URL.
//
// API calls are throttled with a token bucket, and downloads run on a bounded
// worker pool while documents are still emitted in listing order.
package yandexdisk
