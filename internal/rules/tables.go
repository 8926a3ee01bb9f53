// Package rules holds the fixed normalization dictionaries the layers
// consult, plus an optional YAML overlay (see Overlay) that lets an operator
// append additional domain/email fixes without recompiling. Every table
// below is carried verbatim from the prior dedup pipeline's constants.
package rules

import "regexp"

// EPAErrorDomains is the set of known EPA OCR-garbled domain spellings, all
// of which normalize to epa.gov.
var EPAErrorDomains = map[string]struct{}{
	"epa.govl": {}, "epa.qov": {}, "epa.qovl": {}, "epa.goy": {}, "epa.aov": {}, "epa.aovl": {},
	"epa.gqv": {}, "epa.rov": {}, "epa.rovl": {}, "epa.fiov": {}, "epa.giov": {}, "epa.g0v": {},
	"ep3.gov": {}, "ep3.govl": {}, "cpa.gov": {}, "cpa.govl": {}, "cp3.gov": {}, "epa.qoy": {},
	"epa.aoyl": {}, "epa.goyl": {}, "epa.gov1": {}, "epa.go v": {}, "epamail.epa.gov": {},
	"epa.flov": {}, "epa.gqvl": {}, "epa.qqv": {}, "epa.gq": {}, "epa.govcmai": {}, "epa.eov": {},
	"epa.gqyl": {}, "epa.rgv": {}, "epa.go": {}, "epa.govemai": {}, "epa.oov": {}, "epa.oovl": {},
	"epa..gov": {}, "epa.uo": {}, "epa.qo": {}, "epa.ggy": {}, "epa.qqvl": {}, "epa.gqy": {},
	"epa.gm": {}, "epa.govt": {}, "epa.ggv": {}, "epa.rqv": {}, "epa.qqyl": {}, "epa.sov": {},
	"epa.flovl": {}, "epa.rovj": {}, "epa.gqvi": {}, "epa.jtov": {}, "epa.goto": {}, "epa.rqy": {},
	"epa.governai": {}, "epa.aoy": {}, "epa.ciov": {}, "epa.qoyl": {}, "epa.qovy": {}, "epa.ggyl": {},
	"epa.govj": {}, "epa..gqv": {}, "epa.rev": {}, "epa.gev": {}, "epa.p.ov": {}, "epa.g.qy": {},
	"epa.gow": {}, "epa.qqy": {}, "epa.qol": {}, "-epa.gov": {}, "1epa.gov": {}, "1lepa.gov": {},
	"11epa.gov": {}, "gepa.gov": {}, "jepa.gov": {}, "epamail.gov": {},
	"domino.epamail.epa.gov": {}, "usepa.onmicrosoft.com": {},
	"cpa.gqy": {}, "cpa.go": {}, "cpa.goy": {}, "cpa.goyl": {}, "cpa.ggy": {}, "cpa.gm": {},
	"cpa.gg": {}, "cpa.g.qy": {}, "cpa.gcn": {}, "cpa.qov": {}, "cpa.aov": {},
	"cp3.govl": {}, "cp3.goy": {}, "cp3.qov": {},
	".epa.gov": {}, ".epa.gqy": {}, ".epa.go": {}, ".epa.aov": {},
	"ilepa.gov": {}, "ljcpa.gov": {}, "qa.gov": {},
	"epama.il": {},
}

// EmailFixes maps whole garbled addresses (post structural cleanup) to their
// corrected form.
var EmailFixes = map[string]string{
	"zumwalt@americanchemistry.com":        "bryan_zumwalt@americanchemistry.com",
	"bryan.ziimwalt@americanchemistry.com": "bryan_zumwalt@americanchemistry.com",
}

// DomainFixes maps known garbled domain spellings to their correct form.
var DomainFixes = map[string]string{
	"b1m.gov": "blm.gov", "qmail.com": "gmail.com", "gmial.com": "gmail.com",
	"grnail.com": "gmail.com", "grnall.com": "gmail.com", "qrnail.com": "gmail.com",
	"gmai1.com": "gmail.com",
	"acvpl.org": "acypl.org", "acypi.org": "acypl.org", "c3i.org": "cei.org",
	"afan.dpa.org": "afandpa.org", "af3ndpa.org": "afandpa.org",
	"iosidoi.gov": "ios.doi.gov", "ios.doigov": "ios.doi.gov", "iosidoi.goy": "ios.doi.gov",
	"iosdoi.gov": "ios.doi.gov", "jos.doi.gov": "ios.doi.gov", "os.doi.gov": "ios.doi.gov",
	"io.s.doi.gov": "ios.doi.gov", "iios.doi.gov": "ios.doi.gov",
	"soldoi.gov": "sol.doi.gov", "lsol.doi.gov": "sol.doi.gov",
	"aiaska.gov":        "alaska.gov",
	"maii.mil":          "mail.mil",
	"chevrontexaco.com": "chevron.com", "cheyron.com": "chevron.com",
	"westgoy.org": "westgov.org", "ourpublicseryice.org": "ourpublicservice.org",
	"conseryatiye.org": "conservative.org", "conseryationfund.org": "conservationfund.org",
	"conseryamerica.org": "conservamerica.org", "yenable.com": "venable.com",
	"yerizon.net": "verizon.net", "yolyo.com": "volvo.com", "yalero.com": "valero.com",
	"yocgen.com": "vocgen.com", "yictoryenterprises.com": "victoryenterprises.com",
	"yisitokc.com": "visitokc.com", "liyingstongroupdc.com": "livingstongroupdc.com",
	"liyingstongroupdc.co": "livingstongroupdc.com", "hoganloyells.com": "hoganlovells.com",
	"hoganloyeiis.com": "hoganlovells.com", "hoganjoyells.com": "hoganlovells.com",
	"nayigatorsglobal.com": "navigatorsglobal.com", "gayelresources.com": "gavelresources.com",
	"coloradoliyestock.org": "coloradolivestock.org", "colostate.edu": "colostate.edu",
	"hoydengrayassociates.com": "boydengrayassociates.com", "hhqyentures.com": "hhqventures.com",
	"hewelleyents.com": "hewellevents.com", "toxseryices.com": "toxservices.com",
	"public.goydeliyery.com": "public.govdelivery.com", "seryice.goydeliyery.com": "service.govdelivery.com",
	"bcdtrayel.com": "bcdtravel.com", "creatiye-mill.com": "creative-mill.com",
	"inyariantgr.com":              "invariantgr.com",
	"dailycallemewsfoundation.org": "dailycallernewsfoundation.org",
	"bockomygroup.com":             "bockornygroup.com", "hockomygroup.com": "bockornygroup.com",
	"bqckomygrqup.com": "bockornygroup.com", "bockomygroup.co": "bockornygroup.com",
	"bockomygrotip.com": "bockornygroup.com", "southemco.com": "southernco.com",
	"sidiey.com": "sidley.com", "sidiey.co": "sidley.com",
	"hollandliart.com": "hollandhart.com", "honandhart.com": "hollandhart.com",
	"hqllandhart.com": "hollandhart.com", "nelsonmiillins.com": "nelsonmullins.com",
	"nelsonmullms.com": "nelsonmullins.com",
	"aiuminum.org":     "aluminum.org", "aiphq.org": "afphq.org", "afpni.org": "afphq.org",
	"cargili.com": "cargill.com", "cargin.com": "cargill.com",
	"conocophiliips.com": "conocophillips.com", "conocophijlips.com": "conocophillips.com",
	"conocophiglips.com": "conocophillips.com", "conocophihips.com": "conocophillips.com",
	"conocophiljips.com": "conocophillips.com", "conocoohiilids.co": "conocophillips.com",
	"conocophiilips.com": "conocophillips.com", "conocophiyips.co": "conocophillips.com",
	"bqeing.com": "boeing.com", "archcoai.com": "archcoal.com",
	"consoleiiergy.com": "consolenergy.com", "gmaii.com": "gmail.com",
	"listserye.api.org": "listserv.api.org",
	"alphagrpdc.com":    "alphagrpdc.com", "aiphagrpdc.com": "alphagrpdc.com",
	"herifage.org": "heritage.org", "hcritage.org": "heritage.org", "hentage.org": "heritage.org",
	"americanchemisfry.com": "americanchemistry.com", "americanchcmisry.com": "americanchemistry.com",
	"americancheniistry.com": "americanchemistry.com", "amerieanchemistry.com": "americanchemistry.com",
	"americanchemistry.coni": "americanchemistry.com", "americanchemistfy.co": "americanchemistry.com",
	"amerlearichemistry.com": "americanchemistry.com", "americaiichemistry.com": "americanchemistry.com",
	"crqplifeamerica.org": "croplifeamerica.org", "cropnfeamerica.org": "croplifeamerica.org",
	"cropiifeamerica.org": "croplifeamerica.org", "croplifeameriea.org": "croplifeamerica.org",
	"croplifeamenca.org": "croplifeamerica.org", "cropisfeaniersca.org": "croplifeamerica.org",
	"crqpiifearoeriea.org": "croplifeamerica.org", "crophfeamerica.org": "croplifeamerica.org",
	"croplifearoerica.org": "croplifeamerica.org", "cfopiifeamefica.org": "croplifeamerica.org",
	"cfqplifeamerica.org": "croplifeamerica.org", "cropkfeamerica.oig": "croplifeamerica.org",
	"cropgsfeamerica.org": "croplifeamerica.org", "crqpsifeamenea.org": "croplifeamerica.org",
	"crqpjifeameriea.org": "croplifeamerica.org", "cropisfeamersca.org": "croplifeamerica.org",
	"cropsifeaniefica.org": "croplifeamerica.org", "cropnfeanierica.orr": "croplifeamerica.org",
	"cropiifeamenca.org": "croplifeamerica.org",
	"ge.co":              "ge.com", "cbsnews.co": "cbsnews.com", "socma.co": "socma.com",
	"nahb.ofg": "nahb.org", "nahb.grg": "nahb.org", "lung.ofg": "lung.org", "nam.ofg": "nam.org",
	"okfb.ofg": "okfb.org", "awwa.ofg": "awwa.org", "qkfb.org": "okfb.org",
	"growtheneray.org": "growthenergy.org", "nohle.org": "noble.org",
	"sallt.com": "salt.com", "loyes.com": "loves.com", "miningamerica.org": "miningamerica.org",
	"dowcoming.com": "dowcorning.com", "chsnews.com": "cbsnews.com",
	"hsph.haryard.edu": "hsph.harvard.edu", "wms-jen.com": "wms-jen.com",
	"lawa6o.com": "lawa60.com", "72ostrategies.com": "720strategies.com",
	"gps-5o.com": "gps-50.com", "cfaeorp.com": "cfacorp.com", "painf.org": "paint.org",
	"eaest.com": "east.com", "dorox.com": "dorox.com", "dqw.com": "dow.com",
}

// DomainOCRCharMap holds the OCR character substitutions applied to domains
// (order matters when applied sequentially: rn before 1/3/0/v).
var DomainOCRCharMap = []struct{ From, To string }{
	{"rn", "m"}, {"1", "l"}, {"3", "a"}, {"0", "o"}, {"v", "y"},
}

// LocalOCRCharMap holds the OCR character substitutions applied to local
// parts, in table-declaration order.
var LocalOCRCharMap = []struct{ From, To string }{
	{"ffl", "m"}, {"ffi", "n"}, {"rn", "m"}, {"ii", "n"}, {"v", "y"}, {"1", "l"}, {"0", "o"}, {"3", "a"},
}

// MailtoRE matches garbled mailto: prefixes that structural cleanup strips.
var MailtoRE = regexp.MustCompile(`(?i)^(?:` +
	`[rfnc]?mailto[i1l:;c]\s*` +
	`|[rfnc]?rnailto[i1l:;c]\s*` +
	`|[rfnc]?rnai[il1]to[i1l:;c]\s*` +
	`|[rfnc]?mai[il1]to[i1l:;c]\s*` +
	`|mail\.to[i1l:;c]\s*` +
	`|[rfnc]?mailtcr\s*` +
	`|[rfnc]?mai[il1]sto[i1l:;c]\s*` +
	`|[1l]to[i1l:;c]\s*` +
	`)`)

// LastnameFirstDomains names domains known to use a lastname.firstname@
// local-part convention rather than firstname.lastname@.
var LastnameFirstDomains = map[string]struct{}{
	"epa.gov": {},
}

// GenericLocals are local parts that identify a role mailbox rather than a
// person. Layer 7 skips them in Strategy 1b and holds them to the
// domain-similarity gate in Strategies 2 and 3.
var GenericLocals = map[string]struct{}{
	"info": {}, "admin": {}, "support": {}, "contact": {}, "office": {}, "mail": {}, "webmaster": {},
	"sales": {}, "noreply": {}, "help": {}, "service": {}, "news": {}, "media": {}, "press": {},
	"marketing": {}, "hr": {}, "legal": {}, "compliance": {}, "jobs": {}, "careers": {}, "events": {},
	"feedback": {}, "billing": {}, "security": {}, "postmaster": {}, "abuse": {}, "root": {},
	"team": {}, "hello": {}, "general": {}, "inquiries": {}, "membership": {}, "scheduling": {},
	"requests": {}, "records": {}, "orders": {}, "alerts": {}, "comments": {}, "updates": {},
	"planning": {}, "operations": {}, "regulation": {}, "program": {}, "intern": {},
	"counsel": {}, "director": {}, "chairman": {}, "editor": {}, "congress": {},
}

// RoleNounStoplist blocks SplitInitialName from splitting a single-word
// English role noun (e.g. "Congress") into an initial and a surname.
var RoleNounStoplist = map[string]struct{}{
	"press": {}, "scheduling": {}, "requests": {}, "records": {}, "planning": {}, "counsel": {},
	"director": {}, "manager": {}, "editor": {}, "congress": {}, "intern": {}, "orders": {},
	"updates": {}, "alerts": {}, "comments": {}, "regulation": {}, "regulatory": {}, "operations": {},
	"program": {}, "executive": {}, "chairman": {}, "president": {}, "secretary": {}, "treasurer": {},
	"governor": {}, "senator": {}, "representative": {},
}

// CommonFirstNames is used to recognize a bare first name as a real given
// name when splitting concatenated locals.
var CommonFirstNames = map[string]struct{}{
	"aaron": {}, "adam": {}, "adrian": {}, "alan": {}, "albert": {}, "alex": {}, "alexander": {},
	"alfred": {}, "alice": {}, "alicia": {}, "alison": {}, "allen": {}, "allison": {}, "amanda": {},
	"amber": {}, "amy": {}, "andrea": {}, "andrew": {}, "angela": {}, "ann": {}, "anna": {}, "anne": {},
	"annie": {}, "anthony": {}, "april": {}, "arthur": {}, "ashley": {}, "barbara": {}, "barry": {},
	"benjamin": {}, "bernard": {}, "beth": {}, "bethany": {}, "betty": {}, "beverly": {}, "bill": {},
	"billy": {}, "blake": {}, "bobby": {}, "bonnie": {}, "brad": {}, "bradley": {}, "brenda": {},
	"brendan": {}, "brent": {}, "brett": {}, "brian": {}, "bridget": {}, "brittany": {}, "brook": {},
	"brooke": {}, "bruce": {}, "bryan": {}, "calvin": {}, "cameron": {}, "carl": {}, "carol": {},
	"caroline": {}, "carolyn": {}, "catherine": {}, "chad": {}, "charles": {}, "charlotte": {},
	"cheryl": {}, "chris": {}, "christian": {}, "christina": {}, "christine": {}, "christopher": {},
	"cindy": {}, "claire": {}, "clarence": {}, "clark": {}, "claudia": {}, "clifford": {}, "clint": {},
	"cody": {}, "cole": {}, "colin": {}, "connie": {}, "connor": {}, "corey": {}, "craig": {},
	"crystal": {}, "cynthia": {}, "dale": {}, "dallas": {}, "dana": {}, "daniel": {}, "danny": {},
	"darren": {}, "dave": {}, "david": {}, "dawn": {}, "dean": {}, "debbie": {}, "deborah": {},
	"debra": {}, "denise": {}, "dennis": {}, "derek": {}, "derrick": {}, "diana": {}, "diane": {},
	"don": {}, "donald": {}, "donna": {}, "doris": {}, "dorothy": {}, "doug": {}, "douglas": {},
	"drew": {}, "dustin": {}, "dylan": {}, "earl": {}, "eddie": {}, "edward": {}, "eileen": {},
	"elaine": {}, "elizabeth": {}, "ellen": {}, "emily": {}, "emma": {}, "eric": {}, "erica": {},
	"erin": {}, "ernest": {}, "eugene": {}, "eva": {}, "evan": {}, "evelyn": {}, "faith": {},
	"florence": {}, "frances": {}, "francis": {}, "frank": {}, "fred": {}, "frederick": {},
	"gabriel": {}, "gary": {}, "gavin": {}, "gene": {}, "george": {}, "gerald": {}, "gina": {},
	"glen": {}, "glenn": {}, "gloria": {}, "gordon": {}, "grace": {}, "grant": {}, "greg": {},
	"gregory": {}, "gwen": {}, "hannah": {}, "harold": {}, "harry": {}, "harvey": {}, "heather": {},
	"helen": {}, "henry": {}, "herbert": {}, "holly": {}, "howard": {}, "hunter": {}, "irene": {},
	"isaac": {}, "ivan": {}, "jack": {}, "jackie": {}, "jacob": {}, "jacqueline": {}, "james": {},
	"jamie": {}, "jane": {}, "janet": {}, "janice": {}, "jared": {}, "jasmine": {}, "jason": {},
	"jean": {}, "jeff": {}, "jeffrey": {}, "jennifer": {}, "jenny": {}, "jeremy": {}, "jerry": {},
	"jesse": {}, "jessica": {}, "jill": {}, "jimmy": {}, "joan": {}, "joanne": {}, "jocelyn": {},
	"jody": {}, "joel": {}, "john": {}, "johnny": {}, "jonathan": {}, "jordan": {}, "joseph": {},
	"joshua": {}, "joyce": {}, "judith": {}, "judy": {}, "julia": {}, "julian": {}, "julie": {},
	"justin": {}, "karen": {}, "karl": {}, "kate": {}, "katherine": {}, "kathleen": {}, "kathryn": {},
	"kathy": {}, "katie": {}, "keith": {}, "kelly": {}, "ken": {}, "kenneth": {}, "kevin": {},
	"kimberly": {}, "kirk": {}, "kristen": {}, "kristin": {}, "kristina": {}, "kurt": {}, "kyle": {},
	"lance": {}, "larry": {}, "laura": {}, "lauren": {}, "laurie": {}, "lawrence": {}, "leah": {},
	"lee": {}, "leon": {}, "leonard": {}, "leslie": {}, "lillian": {}, "linda": {}, "lindsay": {},
	"lisa": {}, "lois": {}, "loretta": {}, "lori": {}, "louis": {}, "louise": {}, "lucas": {}, "luke": {},
	"lynn": {}, "madison": {}, "marc": {}, "marcus": {}, "margaret": {}, "maria": {}, "marie": {},
	"marilyn": {}, "marion": {}, "mark": {}, "marsha": {}, "martha": {}, "martin": {}, "marvin": {},
	"mary": {}, "matt": {}, "matthew": {}, "maureen": {}, "max": {}, "megan": {}, "melissa": {},
	"michael": {}, "michele": {}, "michelle": {}, "mike": {}, "miles": {}, "miranda": {}, "misty": {},
	"mitchell": {}, "molly": {}, "monica": {}, "morgan": {}, "morris": {}, "nancy": {}, "natalie": {},
	"nathan": {}, "neil": {}, "nelson": {}, "nicholas": {}, "nicole": {}, "noah": {}, "norma": {},
	"norman": {}, "oliver": {}, "olivia": {}, "oscar": {}, "owen": {}, "paige": {}, "pamela": {},
	"patricia": {}, "patrick": {}, "paul": {}, "paula": {}, "peggy": {}, "penny": {}, "peter": {},
	"philip": {}, "phillip": {}, "phyllis": {}, "rachel": {}, "ralph": {}, "randy": {}, "raymond": {},
	"rebecca": {}, "regina": {}, "renee": {}, "rhonda": {}, "richard": {}, "rick": {}, "rita": {},
	"robert": {}, "robin": {}, "rodney": {}, "roger": {}, "roland": {}, "ronald": {}, "rose": {},
	"ross": {}, "roxanne": {}, "roy": {}, "ruby": {}, "russell": {}, "ruth": {}, "ryan": {},
	"sabrina": {}, "sally": {}, "samantha": {}, "samuel": {}, "sandra": {}, "sandy": {}, "sara": {},
	"sarah": {}, "scott": {}, "sean": {}, "seth": {}, "shane": {}, "shannon": {}, "sharon": {},
	"sheila": {}, "shelley": {}, "sherry": {}, "shirley": {}, "sophia": {}, "stacey": {},
	"stacy": {}, "stanley": {}, "stefanie": {}, "stephanie": {}, "stephen": {}, "steve": {},
	"steven": {}, "stuart": {}, "susan": {}, "suzanne": {}, "sydney": {}, "sylvia": {}, "tamara": {},
	"tammy": {}, "tanya": {}, "tara": {}, "taylor": {}, "teresa": {}, "terri": {}, "terry": {},
	"thelma": {}, "theresa": {}, "thomas": {}, "tiffany": {}, "timothy": {}, "tina": {}, "todd": {},
	"tommy": {}, "tony": {}, "tracy": {}, "travis": {}, "trevor": {}, "troy": {}, "tyler": {},
	"valerie": {}, "vanessa": {}, "vernon": {}, "veronica": {}, "vicki": {}, "victoria": {},
	"vincent": {}, "virginia": {}, "vivian": {}, "wade": {}, "walter": {}, "wanda": {}, "warren": {},
	"wayne": {}, "wendy": {}, "wesley": {}, "whitney": {}, "william": {}, "willie": {}, "yolanda": {},
	"zachary": {},
}
