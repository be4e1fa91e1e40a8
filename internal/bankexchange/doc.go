// Package bankexchange reads the 1C "ClientBankExchange" statement export and
// turns its payment documents into ledger transactions.
//
// The file is line oriented:
//
//	1CClientBankExchange
//	ВерсияФормата=1.03
//	...
//	СекцияДокумент=Платежное поручение
//	Дата=05.03.2024
//	Сумма=15000,00
//	...
//	КонецДокумента
//	КонецФайла
//
// Only what is needed to extract transaction facts is interpreted; everything
// else (account sections, header fields) is skipped.
package bankexchange
