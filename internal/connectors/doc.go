// Package connectors provides implementations of the Connector interface
// for the document sources the bot indexes. Each connector knows how to
// fetch documents from one source type:
//
//   - filesystem: the local documents directory
//   - yandexdisk: a public Yandex.Disk folder
package connectors
