package bankexchange_test

const ownINN = "770100000001"

const sampleStatement = `1CClientBankExchange
ВерсияФормата=1.03
Кодировка=Windows
Отправитель=Бухгалтерия предприятия
ДатаНачала=01.01.2024
ДатаКонца=31.03.2024
СекцияРасчСчет
РасчСчет=40802810900000000001
КонецРасчСчет
СекцияДокумент=Платежное поручение
Номер=11
Дата=15.01.2024
Сумма=120000,00
ПлательщикСчет=40702810100000000077
ПлательщикИНН=500100000002
ПолучательСчет=40802810900000000001
ПолучательИНН=770100000001
НазначениеПлатежа=Оплата по счету 15 за разработку сайта. НДС не облагается
КонецДокумента
СекцияДокумент=Платежное поручение
Номер=12
Дата=20.02.2024
Сумма=35000,00
ПлательщикСчет=40802810900000000001
ПлательщикИНН=770100000001
ПолучательСчет=40702810500000000099
ПолучательИНН=500100000003
НазначениеПлатежа=Аренда офиса за февраль 2024
КонецДокумента
СекцияДокумент=Банковский ордер
Номер=13
Дата=29.02.2024
Сумма=1 490,50
ПлательщикСчет=40802810900000000001
ПлательщикИНН=770100000001
ПолучательСчет=30101810400000000225
ПолучательИНН=770200000004
НазначениеПлатежа=Комиссия за ведение счета
КонецДокумента
КонецФайла
`
