// Package batch runs many validator checks in one go and reports the
// outcome of each.
//
// A Check names a kind (nip, pesel, regon, nrb, iban, mail, price, postcode,
// phone, url, range, length, step, under_zero or any pattern name from
// validator.Patterns) and the value to test. Run evaluates them in order and
// returns a Report:
//
//	f, err := batch.Decode(file)
//	if err != nil {
//	    return err
//	}
//	report, err := batch.Run(ctx, f.Checks,
//	    batch.WithTranslator(tr, tr.Match(f.Lang)),
//	    batch.WithIBANCountry(f.IBANCountry),
//	)
//	if err != nil {
//	    return err
//	}
//	_ = report.Encode(os.Stdout, batch.FormatJSON)
//
// A check of an unregistered kind ends up with StatusUnknown rather than
// failing the whole run. Failed results carry the validator sentinel text
// (for example "invalid checksum") as Reason and a localized Message.
package batch
