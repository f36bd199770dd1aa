package locale

// English is the en_US export.
func English() *Locale {
	return &Locale{
		Name: "en",
		Fields: []Field{
			{Column: "Date", Key: KeyDate},
			{Column: "Time", Key: KeyTime},
			{Column: "TimeZone", Key: KeyTimezone},
			{Column: "Name", Key: KeyName},
			{Column: "Type", Key: KeyType},
			{Column: "Status", Key: KeyStatus},
			{Column: "Currency", Key: KeyCurrency},
			{Column: "Gross", Key: KeyGross},
			{Column: "Fee", Key: KeyFee},
			{Column: "Net", Key: KeyNet},
			{Column: "From Email Address", Key: KeyFrom},
			{Column: "To Email Address", Key: KeyTo},
			{Column: "Transaction ID", Key: KeyTxnID},
			{Column: "Reference Txn ID", Key: KeyReferenceTxnID},
			{Column: "Receipt ID", Key: KeyReceiptID},
			{Column: "Item Title", Key: KeyItemTitle, Optional: true},
			{Column: "Subject", Key: KeySubject, Optional: true},
			{Column: "Note", Key: KeyNote, Optional: true},
			{Column: "Balance", Key: KeyBalance, Optional: true},
			{Column: "Balance Impact", Key: KeyBalanceImpact, Optional: true},
		},
		Metadata: []MetaField{
			{Key: "uuid", Column: "Transaction ID"},
			{Key: "sender", Column: "From Email Address"},
			{Key: "recipient", Column: "To Email Address"},
		},
		DateLayout:         "01/02/2006",
		Thousands:          []string{","},
		DecimalMark:        ".",
		FromChecking:       "Bank Deposit to PP Account ",
		CurrencyConversion: "General Currency Conversion",
	}
}

// German is the de_DE export.
func German() *Locale {
	return &Locale{
		Name: "de",
		Fields: []Field{
			{Column: "Datum", Key: KeyDate},
			{Column: "Uhrzeit", Key: KeyTime},
			{Column: "Zeitzone", Key: KeyTimezone},
			{Column: "Name", Key: KeyName},
			{Column: "Typ", Key: KeyType},
			{Column: "Status", Key: KeyStatus},
			{Column: "Währung", Key: KeyCurrency},
			{Column: "Brutto", Key: KeyGross},
			{Column: "Gebühr", Key: KeyFee},
			{Column: "Netto", Key: KeyNet},
			{Column: "Absender E-Mail-Adresse", Key: KeyFrom},
			{Column: "Empfänger E-Mail-Adresse", Key: KeyTo},
			{Column: "Transaktionscode", Key: KeyTxnID},
			{Column: "Zugehöriger Transaktionscode", Key: KeyReferenceTxnID},
			{Column: "Empfangsnummer", Key: KeyReceiptID},
			{Column: "Artikelbezeichnung", Key: KeyItemTitle, Optional: true},
			{Column: "Betreff", Key: KeySubject, Optional: true},
			{Column: "Hinweis", Key: KeyNote, Optional: true},
			{Column: "Guthaben", Key: KeyBalance, Optional: true},
			{Column: "Auswirkung auf Guthaben", Key: KeyBalanceImpact, Optional: true},
		},
		Metadata: []MetaField{
			{Key: "uuid", Column: "Transaktionscode"},
			{Key: "sender", Column: "Absender E-Mail-Adresse"},
			{Key: "recipient", Column: "Empfänger E-Mail-Adresse"},
		},
		DateLayout:         "02.01.2006",
		Thousands:          []string{"."},
		DecimalMark:        ",",
		FromChecking:       "Bankgutschrift auf PayPal-Konto",
		CurrencyConversion: "Allgemeine Währungsumrechnung",
	}
}

// French is the fr_FR export. Amounts are grouped with regular, no-break or
// narrow no-break spaces depending on the export date.
func French() *Locale {
	return &Locale{
		Name: "fr",
		Fields: []Field{
			{Column: "Date", Key: KeyDate},
			{Column: "Heure", Key: KeyTime},
			{Column: "Fuseau horaire", Key: KeyTimezone},
			{Column: "Nom", Key: KeyName},
			{Column: "Type", Key: KeyType},
			{Column: "État", Key: KeyStatus},
			{Column: "Devise", Key: KeyCurrency},
			{Column: "Avant commission", Key: KeyGross},
			{Column: "Commission", Key: KeyFee},
			{Column: "Net", Key: KeyNet},
			{Column: "De l'adresse email", Key: KeyFrom},
			{Column: "À l'adresse email", Key: KeyTo},
			{Column: "Numéro de transaction", Key: KeyTxnID},
			{Column: "Numéro de la transaction de référence", Key: KeyReferenceTxnID},
			{Column: "Numéro de reçu", Key: KeyReceiptID},
			{Column: "Titre de l'objet", Key: KeyItemTitle, Optional: true},
			{Column: "Objet", Key: KeySubject, Optional: true},
			{Column: "Remarque", Key: KeyNote, Optional: true},
			{Column: "Solde", Key: KeyBalance, Optional: true},
			{Column: "Impact sur le solde", Key: KeyBalanceImpact, Optional: true},
		},
		Metadata: []MetaField{
			{Key: "uuid", Column: "Numéro de transaction"},
			{Key: "sender", Column: "De l'adresse email"},
			{Key: "recipient", Column: "À l'adresse email"},
		},
		DateLayout:         "02/01/2006",
		Thousands:          []string{" ", "\u00a0", "\u202f", "."},
		DecimalMark:        ",",
		FromChecking:       "Virement bancaire sur le compte PayPal",
		CurrencyConversion: "Conversion de devise standard",
	}
}
