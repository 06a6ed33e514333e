package spec

// Entities is the named character reference table from
// https://html.spec.whatwg.org/multipage/entities.json, keyed by the full
// reference including the leading `&` (and trailing `;` where present).
// Some references have a legacy form with no semicolon, e.g. "&lt".
var Entities = map[string]Entity{
	"&Aacute;":                          {Codepoints: []rune{193}, Characters: "\u00C1"},
	"&Aacute":                           {Codepoints: []rune{193}, Characters: "\u00C1"},
	"&aacute;":                          {Codepoints: []rune{225}, Characters: "\u00E1"},
	"&aacute":                           {Codepoints: []rune{225}, Characters: "\u00E1"},
	"&Abreve;":                          {Codepoints: []rune{258}, Characters: "\u0102"},
	"&abreve;":                          {Codepoints: []rune{259}, Characters: "\u0103"},
	"&ac;":                              {Codepoints: []rune{8766}, Characters: "\u223E"},
	"&acd;":                             {Codepoints: []rune{8767}, Characters: "\u223F"},
	"&acE;":                             {Codepoints: []rune{8766, 819}, Characters: "\u223E\u0333"},
	"&Acirc;":                           {Codepoints: []rune{194}, Characters: "\u00C2"},
	"&Acirc":                            {Codepoints: []rune{194}, Characters: "\u00C2"},
	"&acirc;":                           {Codepoints: []rune{226}, Characters: "\u00E2"},
	"&acirc":                            {Codepoints: []rune{226}, Characters: "\u00E2"},
	"&acute;":                           {Codepoints: []rune{180}, Characters: "\u00B4"},
	"&acute":                            {Codepoints: []rune{180}, Characters: "\u00B4"},
	"&Acy;":                             {Codepoints: []rune{1040}, Characters: "\u0410"},
	"&acy;":                             {Codepoints: []rune{1072}, Characters: "\u0430"},
	"&AElig;":                           {Codepoints: []rune{198}, Characters: "\u00C6"},
	"&AElig":                            {Codepoints: []rune{198}, Characters: "\u00C6"},
	"&aelig;":                           {Codepoints: []rune{230}, Characters: "\u00E6"},
	"&aelig":                            {Codepoints: []rune{230}, Characters: "\u00E6"},
	"&af;":                              {Codepoints: []rune{8289}, Characters: "\u2061"},
	"&Afr;":                             {Codepoints: []rune{120068}, Characters: "\U0001D504"},
	"&afr;":                             {Codepoints: []rune{120094}, Characters: "\U0001D51E"},
	"&Agrave;":                          {Codepoints: []rune{192}, Characters: "\u00C0"},
	"&Agrave":                           {Codepoints: []rune{192}, Characters: "\u00C0"},
	"&agrave;":                          {Codepoints: []rune{224}, Characters: "\u00E0"},
	"&agrave":                           {Codepoints: []rune{224}, Characters: "\u00E0"},
	"&alefsym;":                         {Codepoints: []rune{8501}, Characters: "\u2135"},
	"&aleph;":                           {Codepoints: []rune{8501}, Characters: "\u2135"},
	"&Alpha;":                           {Codepoints: []rune{913}, Characters: "\u0391"},
	"&alpha;":                           {Codepoints: []rune{945}, Characters: "\u03B1"},
	"&Amacr;":                           {Codepoints: []rune{256}, Characters: "\u0100"},
	"&amacr;":                           {Codepoints: []rune{257}, Characters: "\u0101"},
	"&amalg;":                           {Codepoints: []rune{10815}, Characters: "\u2A3F"},
	"&amp;":                             {Codepoints: []rune{38}, Characters: "&"},
	"&amp":                              {Codepoints: []rune{38}, Characters: "&"},
	"&AMP;":                             {Codepoints: []rune{38}, Characters: "&"},
	"&AMP":                              {Codepoints: []rune{38}, Characters: "&"},
	"&andand;":                          {Codepoints: []rune{10837}, Characters: "\u2A55"},
	"&And;":                             {Codepoints: []rune{10835}, Characters: "\u2A53"},
	"&and;":                             {Codepoints: []rune{8743}, Characters: "\u2227"},
	"&andd;":                            {Codepoints: []rune{10844}, Characters: "\u2A5C"},
	"&andslope;":                        {Codepoints: []rune{10840}, Characters: "\u2A58"},
	"&andv;":                            {Codepoints: []rune{10842}, Characters: "\u2A5A"},
	"&ang;":                             {Codepoints: []rune{8736}, Characters: "\u2220"},
	"&ange;":                            {Codepoints: []rune{10660}, Characters: "\u29A4"},
	"&angle;":                           {Codepoints: []rune{8736}, Characters: "\u2220"},
	"&angmsdaa;":                        {Codepoints: []rune{10664}, Characters: "\u29A8"},
	"&angmsdab;":                        {Codepoints: []rune{10665}, Characters: "\u29A9"},
	"&angmsdac;":                        {Codepoints: []rune{10666}, Characters: "\u29AA"},
	"&angmsdad;":                        {Codepoints: []rune{10667}, Characters: "\u29AB"},
	"&angmsdae;":                        {Codepoints: []rune{10668}, Characters: "\u29AC"},
	"&angmsdaf;":                        {Codepoints: []rune{10669}, Characters: "\u29AD"},
	"&angmsdag;":                        {Codepoints: []rune{10670}, Characters: "\u29AE"},
	"&angmsdah;":                        {Codepoints: []rune{10671}, Characters: "\u29AF"},
	"&angmsd;":                          {Codepoints: []rune{8737}, Characters: "\u2221"},
	"&angrt;":                           {Codepoints: []rune{8735}, Characters: "\u221F"},
	"&angrtvb;":                         {Codepoints: []rune{8894}, Characters: "\u22BE"},
	"&angrtvbd;":                        {Codepoints: []rune{10653}, Characters: "\u299D"},
	"&angsph;":                          {Codepoints: []rune{8738}, Characters: "\u2222"},
	"&angst;":                           {Codepoints: []rune{197}, Characters: "\u00C5"},
	"&angzarr;":                         {Codepoints: []rune{9084}, Characters: "\u237C"},
	"&Aogon;":                           {Codepoints: []rune{260}, Characters: "\u0104"},
	"&aogon;":                           {Codepoints: []rune{261}, Characters: "\u0105"},
	"&Aopf;":                            {Codepoints: []rune{120120}, Characters: "\U0001D538"},
	"&aopf;":                            {Codepoints: []rune{120146}, Characters: "\U0001D552"},
	"&apacir;":                          {Codepoints: []rune{10863}, Characters: "\u2A6F"},
	"&ap;":                              {Codepoints: []rune{8776}, Characters: "\u2248"},
	"&apE;":                             {Codepoints: []rune{10864}, Characters: "\u2A70"},
	"&ape;":                             {Codepoints: []rune{8778}, Characters: "\u224A"},
	"&apid;":                            {Codepoints: []rune{8779}, Characters: "\u224B"},
	"&apos;":                            {Codepoints: []rune{39}, Characters: "'"},
	"&ApplyFunction;":                   {Codepoints: []rune{8289}, Characters: "\u2061"},
	"&approx;":                          {Codepoints: []rune{8776}, Characters: "\u2248"},
	"&approxeq;":                        {Codepoints: []rune{8778}, Characters: "\u224A"},
	"&Aring;":                           {Codepoints: []rune{197}, Characters: "\u00C5"},
	"&Aring":                            {Codepoints: []rune{197}, Characters: "\u00C5"},
	"&aring;":                           {Codepoints: []rune{229}, Characters: "\u00E5"},
	"&aring":                            {Codepoints: []rune{229}, Characters: "\u00E5"},
	"&Ascr;":                            {Codepoints: []rune{119964}, Characters: "\U0001D49C"},
	"&ascr;":                            {Codepoints: []rune{119990}, Characters: "\U0001D4B6"},
	"&Assign;":                          {Codepoints: []rune{8788}, Characters: "\u2254"},
	"&ast;":                             {Codepoints: []rune{42}, Characters: "*"},
	"&asymp;":                           {Codepoints: []rune{8776}, Characters: "\u2248"},
	"&asympeq;":                         {Codepoints: []rune{8781}, Characters: "\u224D"},
	"&Atilde;":                          {Codepoints: []rune{195}, Characters: "\u00C3"},
	"&Atilde":                           {Codepoints: []rune{195}, Characters: "\u00C3"},
	"&atilde;":                          {Codepoints: []rune{227}, Characters: "\u00E3"},
	"&atilde":                           {Codepoints: []rune{227}, Characters: "\u00E3"},
	"&Auml;":                            {Codepoints: []rune{196}, Characters: "\u00C4"},
	"&Auml":                             {Codepoints: []rune{196}, Characters: "\u00C4"},
	"&auml;":                            {Codepoints: []rune{228}, Characters: "\u00E4"},
	"&auml":                             {Codepoints: []rune{228}, Characters: "\u00E4"},
	"&awconint;":                        {Codepoints: []rune{8755}, Characters: "\u2233"},
	"&awint;":                           {Codepoints: []rune{10769}, Characters: "\u2A11"},
	"&backcong;":                        {Codepoints: []rune{8780}, Characters: "\u224C"},
	"&backepsilon;":                     {Codepoints: []rune{1014}, Characters: "\u03F6"},
	"&backprime;":                       {Codepoints: []rune{8245}, Characters: "\u2035"},
	"&backsim;":                         {Codepoints: []rune{8765}, Characters: "\u223D"},
	"&backsimeq;":                       {Codepoints: []rune{8909}, Characters: "\u22CD"},
	"&Backslash;":                       {Codepoints: []rune{8726}, Characters: "\u2216"},
	"&Barv;":                            {Codepoints: []rune{10983}, Characters: "\u2AE7"},
	"&barvee;":                          {Codepoints: []rune{8893}, Characters: "\u22BD"},
	"&barwed;":                          {Codepoints: []rune{8965}, Characters: "\u2305"},
	"&Barwed;":                          {Codepoints: []rune{8966}, Characters: "\u2306"},
	"&barwedge;":                        {Codepoints: []rune{8965}, Characters: "\u2305"},
	"&bbrk;":                            {Codepoints: []rune{9141}, Characters: "\u23B5"},
	"&bbrktbrk;":                        {Codepoints: []rune{9142}, Characters: "\u23B6"},
	"&bcong;":                           {Codepoints: []rune{8780}, Characters: "\u224C"},
	"&Bcy;":                             {Codepoints: []rune{1041}, Characters: "\u0411"},
	"&bcy;":                             {Codepoints: []rune{1073}, Characters: "\u0431"},
	"&bdquo;":                           {Codepoints: []rune{8222}, Characters: "\u201E"},
	"&becaus;":                          {Codepoints: []rune{8757}, Characters: "\u2235"},
	"&because;":                         {Codepoints: []rune{8757}, Characters: "\u2235"},
	"&Because;":                         {Codepoints: []rune{8757}, Characters: "\u2235"},
	"&bemptyv;":                         {Codepoints: []rune{10672}, Characters: "\u29B0"},
	"&bepsi;":                           {Codepoints: []rune{1014}, Characters: "\u03F6"},
	"&bernou;":                          {Codepoints: []rune{8492}, Characters: "\u212C"},
	"&Bernoullis;":                      {Codepoints: []rune{8492}, Characters: "\u212C"},
	"&Beta;":                            {Codepoints: []rune{914}, Characters: "\u0392"},
	"&beta;":                            {Codepoints: []rune{946}, Characters: "\u03B2"},
	"&beth;":                            {Codepoints: []rune{8502}, Characters: "\u2136"},
	"&between;":                         {Codepoints: []rune{8812}, Characters: "\u226C"},
	"&Bfr;":                             {Codepoints: []rune{120069}, Characters: "\U0001D505"},
	"&bfr;":                             {Codepoints: []rune{120095}, Characters: "\U0001D51F"},
	"&bigcap;":                          {Codepoints: []rune{8898}, Characters: "\u22C2"},
	"&bigcirc;":                         {Codepoints: []rune{9711}, Characters: "\u25EF"},
	"&bigcup;":                          {Codepoints: []rune{8899}, Characters: "\u22C3"},
	"&bigodot;":                         {Codepoints: []rune{10752}, Characters: "\u2A00"},
	"&bigoplus;":                        {Codepoints: []rune{10753}, Characters: "\u2A01"},
	"&bigotimes;":                       {Codepoints: []rune{10754}, Characters: "\u2A02"},
	"&bigsqcup;":                        {Codepoints: []rune{10758}, Characters: "\u2A06"},
	"&bigstar;":                         {Codepoints: []rune{9733}, Characters: "\u2605"},
	"&bigtriangledown;":                 {Codepoints: []rune{9661}, Characters: "\u25BD"},
	"&bigtriangleup;":                   {Codepoints: []rune{9651}, Characters: "\u25B3"},
	"&biguplus;":                        {Codepoints: []rune{10756}, Characters: "\u2A04"},
	"&bigvee;":                          {Codepoints: []rune{8897}, Characters: "\u22C1"},
	"&bigwedge;":                        {Codepoints: []rune{8896}, Characters: "\u22C0"},
	"&bkarow;":                          {Codepoints: []rune{10509}, Characters: "\u290D"},
	"&blacklozenge;":                    {Codepoints: []rune{10731}, Characters: "\u29EB"},
	"&blacksquare;":                     {Codepoints: []rune{9642}, Characters: "\u25AA"},
	"&blacktriangle;":                   {Codepoints: []rune{9652}, Characters: "\u25B4"},
	"&blacktriangledown;":               {Codepoints: []rune{9662}, Characters: "\u25BE"},
	"&blacktriangleleft;":               {Codepoints: []rune{9666}, Characters: "\u25C2"},
	"&blacktriangleright;":              {Codepoints: []rune{9656}, Characters: "\u25B8"},
	"&blank;":                           {Codepoints: []rune{9251}, Characters: "\u2423"},
	"&blk12;":                           {Codepoints: []rune{9618}, Characters: "\u2592"},
	"&blk14;":                           {Codepoints: []rune{9617}, Characters: "\u2591"},
	"&blk34;":                           {Codepoints: []rune{9619}, Characters: "\u2593"},
	"&block;":                           {Codepoints: []rune{9608}, Characters: "\u2588"},
	"&bne;":                             {Codepoints: []rune{61, 8421}, Characters: "=\u20E5"},
	"&bnequiv;":                         {Codepoints: []rune{8801, 8421}, Characters: "\u2261\u20E5"},
	"&bNot;":                            {Codepoints: []rune{10989}, Characters: "\u2AED"},
	"&bnot;":                            {Codepoints: []rune{8976}, Characters: "\u2310"},
	"&Bopf;":                            {Codepoints: []rune{120121}, Characters: "\U0001D539"},
	"&bopf;":                            {Codepoints: []rune{120147}, Characters: "\U0001D553"},
	"&bot;":                             {Codepoints: []rune{8869}, Characters: "\u22A5"},
	"&bottom;":                          {Codepoints: []rune{8869}, Characters: "\u22A5"},
	"&bowtie;":                          {Codepoints: []rune{8904}, Characters: "\u22C8"},
	"&boxbox;":                          {Codepoints: []rune{10697}, Characters: "\u29C9"},
	"&boxdl;":                           {Codepoints: []rune{9488}, Characters: "\u2510"},
	"&boxdL;":                           {Codepoints: []rune{9557}, Characters: "\u2555"},
	"&boxDl;":                           {Codepoints: []rune{9558}, Characters: "\u2556"},
	"&boxDL;":                           {Codepoints: []rune{9559}, Characters: "\u2557"},
	"&boxdr;":                           {Codepoints: []rune{9484}, Characters: "\u250C"},
	"&boxdR;":                           {Codepoints: []rune{9554}, Characters: "\u2552"},
	"&boxDr;":                           {Codepoints: []rune{9555}, Characters: "\u2553"},
	"&boxDR;":                           {Codepoints: []rune{9556}, Characters: "\u2554"},
	"&boxh;":                            {Codepoints: []rune{9472}, Characters: "\u2500"},
	"&boxH;":                            {Codepoints: []rune{9552}, Characters: "\u2550"},
	"&boxhd;":                           {Codepoints: []rune{9516}, Characters: "\u252C"},
	"&boxHd;":                           {Codepoints: []rune{9572}, Characters: "\u2564"},
	"&boxhD;":                           {Codepoints: []rune{9573}, Characters: "\u2565"},
	"&boxHD;":                           {Codepoints: []rune{9574}, Characters: "\u2566"},
	"&boxhu;":                           {Codepoints: []rune{9524}, Characters: "\u2534"},
	"&boxHu;":                           {Codepoints: []rune{9575}, Characters: "\u2567"},
	"&boxhU;":                           {Codepoints: []rune{9576}, Characters: "\u2568"},
	"&boxHU;":                           {Codepoints: []rune{9577}, Characters: "\u2569"},
	"&boxminus;":                        {Codepoints: []rune{8863}, Characters: "\u229F"},
	"&boxplus;":                         {Codepoints: []rune{8862}, Characters: "\u229E"},
	"&boxtimes;":                        {Codepoints: []rune{8864}, Characters: "\u22A0"},
	"&boxul;":                           {Codepoints: []rune{9496}, Characters: "\u2518"},
	"&boxuL;":                           {Codepoints: []rune{9563}, Characters: "\u255B"},
	"&boxUl;":                           {Codepoints: []rune{9564}, Characters: "\u255C"},
	"&boxUL;":                           {Codepoints: []rune{9565}, Characters: "\u255D"},
	"&boxur;":                           {Codepoints: []rune{9492}, Characters: "\u2514"},
	"&boxuR;":                           {Codepoints: []rune{9560}, Characters: "\u2558"},
	"&boxUr;":                           {Codepoints: []rune{9561}, Characters: "\u2559"},
	"&boxUR;":                           {Codepoints: []rune{9562}, Characters: "\u255A"},
	"&boxv;":                            {Codepoints: []rune{9474}, Characters: "\u2502"},
	"&boxV;":                            {Codepoints: []rune{9553}, Characters: "\u2551"},
	"&boxvh;":                           {Codepoints: []rune{9532}, Characters: "\u253C"},
	"&boxvH;":                           {Codepoints: []rune{9578}, Characters: "\u256A"},
	"&boxVh;":                           {Codepoints: []rune{9579}, Characters: "\u256B"},
	"&boxVH;":                           {Codepoints: []rune{9580}, Characters: "\u256C"},
	"&boxvl;":                           {Codepoints: []rune{9508}, Characters: "\u2524"},
	"&boxvL;":                           {Codepoints: []rune{9569}, Characters: "\u2561"},
	"&boxVl;":                           {Codepoints: []rune{9570}, Characters: "\u2562"},
	"&boxVL;":                           {Codepoints: []rune{9571}, Characters: "\u2563"},
	"&boxvr;":                           {Codepoints: []rune{9500}, Characters: "\u251C"},
	"&boxvR;":                           {Codepoints: []rune{9566}, Characters: "\u255E"},
	"&boxVr;":                           {Codepoints: []rune{9567}, Characters: "\u255F"},
	"&boxVR;":                           {Codepoints: []rune{9568}, Characters: "\u2560"},
	"&bprime;":                          {Codepoints: []rune{8245}, Characters: "\u2035"},
	"&breve;":                           {Codepoints: []rune{728}, Characters: "\u02D8"},
	"&Breve;":                           {Codepoints: []rune{728}, Characters: "\u02D8"},
	"&brvbar;":                          {Codepoints: []rune{166}, Characters: "\u00A6"},
	"&brvbar":                           {Codepoints: []rune{166}, Characters: "\u00A6"},
	"&bscr;":                            {Codepoints: []rune{119991}, Characters: "\U0001D4B7"},
	"&Bscr;":                            {Codepoints: []rune{8492}, Characters: "\u212C"},
	"&bsemi;":                           {Codepoints: []rune{8271}, Characters: "\u204F"},
	"&bsim;":                            {Codepoints: []rune{8765}, Characters: "\u223D"},
	"&bsime;":                           {Codepoints: []rune{8909}, Characters: "\u22CD"},
	"&bsolb;":                           {Codepoints: []rune{10693}, Characters: "\u29C5"},
	"&bsol;":                            {Codepoints: []rune{92}, Characters: "\u005C"},
	"&bsolhsub;":                        {Codepoints: []rune{10184}, Characters: "\u27C8"},
	"&bull;":                            {Codepoints: []rune{8226}, Characters: "\u2022"},
	"&bullet;":                          {Codepoints: []rune{8226}, Characters: "\u2022"},
	"&bump;":                            {Codepoints: []rune{8782}, Characters: "\u224E"},
	"&bumpE;":                           {Codepoints: []rune{10926}, Characters: "\u2AAE"},
	"&bumpe;":                           {Codepoints: []rune{8783}, Characters: "\u224F"},
	"&Bumpeq;":                          {Codepoints: []rune{8782}, Characters: "\u224E"},
	"&bumpeq;":                          {Codepoints: []rune{8783}, Characters: "\u224F"},
	"&Cacute;":                          {Codepoints: []rune{262}, Characters: "\u0106"},
	"&cacute;":                          {Codepoints: []rune{263}, Characters: "\u0107"},
	"&capand;":                          {Codepoints: []rune{10820}, Characters: "\u2A44"},
	"&capbrcup;":                        {Codepoints: []rune{10825}, Characters: "\u2A49"},
	"&capcap;":                          {Codepoints: []rune{10827}, Characters: "\u2A4B"},
	"&cap;":                             {Codepoints: []rune{8745}, Characters: "\u2229"},
	"&Cap;":                             {Codepoints: []rune{8914}, Characters: "\u22D2"},
	"&capcup;":                          {Codepoints: []rune{10823}, Characters: "\u2A47"},
	"&capdot;":                          {Codepoints: []rune{10816}, Characters: "\u2A40"},
	"&CapitalDifferentialD;":            {Codepoints: []rune{8517}, Characters: "\u2145"},
	"&caps;":                            {Codepoints: []rune{8745, 65024}, Characters: "\u2229\uFE00"},
	"&caret;":                           {Codepoints: []rune{8257}, Characters: "\u2041"},
	"&caron;":                           {Codepoints: []rune{711}, Characters: "\u02C7"},
	"&Cayleys;":                         {Codepoints: []rune{8493}, Characters: "\u212D"},
	"&ccaps;":                           {Codepoints: []rune{10829}, Characters: "\u2A4D"},
	"&Ccaron;":                          {Codepoints: []rune{268}, Characters: "\u010C"},
	"&ccaron;":                          {Codepoints: []rune{269}, Characters: "\u010D"},
	"&Ccedil;":                          {Codepoints: []rune{199}, Characters: "\u00C7"},
	"&Ccedil":                           {Codepoints: []rune{199}, Characters: "\u00C7"},
	"&ccedil;":                          {Codepoints: []rune{231}, Characters: "\u00E7"},
	"&ccedil":                           {Codepoints: []rune{231}, Characters: "\u00E7"},
	"&Ccirc;":                           {Codepoints: []rune{264}, Characters: "\u0108"},
	"&ccirc;":                           {Codepoints: []rune{265}, Characters: "\u0109"},
	"&Cconint;":                         {Codepoints: []rune{8752}, Characters: "\u2230"},
	"&ccups;":                           {Codepoints: []rune{10828}, Characters: "\u2A4C"},
	"&ccupssm;":                         {Codepoints: []rune{10832}, Characters: "\u2A50"},
	"&Cdot;":                            {Codepoints: []rune{266}, Characters: "\u010A"},
	"&cdot;":                            {Codepoints: []rune{267}, Characters: "\u010B"},
	"&cedil;":                           {Codepoints: []rune{184}, Characters: "\u00B8"},
	"&cedil":                            {Codepoints: []rune{184}, Characters: "\u00B8"},
	"&Cedilla;":                         {Codepoints: []rune{184}, Characters: "\u00B8"},
	"&cemptyv;":                         {Codepoints: []rune{10674}, Characters: "\u29B2"},
	"&cent;":                            {Codepoints: []rune{162}, Characters: "\u00A2"},
	"&cent":                             {Codepoints: []rune{162}, Characters: "\u00A2"},
	"&centerdot;":                       {Codepoints: []rune{183}, Characters: "\u00B7"},
	"&CenterDot;":                       {Codepoints: []rune{183}, Characters: "\u00B7"},
	"&cfr;":                             {Codepoints: []rune{120096}, Characters: "\U0001D520"},
	"&Cfr;":                             {Codepoints: []rune{8493}, Characters: "\u212D"},
	"&CHcy;":                            {Codepoints: []rune{1063}, Characters: "\u0427"},
	"&chcy;":                            {Codepoints: []rune{1095}, Characters: "\u0447"},
	"&check;":                           {Codepoints: []rune{10003}, Characters: "\u2713"},
	"&checkmark;":                       {Codepoints: []rune{10003}, Characters: "\u2713"},
	"&Chi;":                             {Codepoints: []rune{935}, Characters: "\u03A7"},
	"&chi;":                             {Codepoints: []rune{967}, Characters: "\u03C7"},
	"&circ;":                            {Codepoints: []rune{710}, Characters: "\u02C6"},
	"&circeq;":                          {Codepoints: []rune{8791}, Characters: "\u2257"},
	"&circlearrowleft;":                 {Codepoints: []rune{8634}, Characters: "\u21BA"},
	"&circlearrowright;":                {Codepoints: []rune{8635}, Characters: "\u21BB"},
	"&circledast;":                      {Codepoints: []rune{8859}, Characters: "\u229B"},
	"&circledcirc;":                     {Codepoints: []rune{8858}, Characters: "\u229A"},
	"&circleddash;":                     {Codepoints: []rune{8861}, Characters: "\u229D"},
	"&CircleDot;":                       {Codepoints: []rune{8857}, Characters: "\u2299"},
	"&circledR;":                        {Codepoints: []rune{174}, Characters: "\u00AE"},
	"&circledS;":                        {Codepoints: []rune{9416}, Characters: "\u24C8"},
	"&CircleMinus;":                     {Codepoints: []rune{8854}, Characters: "\u2296"},
	"&CirclePlus;":                      {Codepoints: []rune{8853}, Characters: "\u2295"},
	"&CircleTimes;":                     {Codepoints: []rune{8855}, Characters: "\u2297"},
	"&cir;":                             {Codepoints: []rune{9675}, Characters: "\u25CB"},
	"&cirE;":                            {Codepoints: []rune{10691}, Characters: "\u29C3"},
	"&cire;":                            {Codepoints: []rune{8791}, Characters: "\u2257"},
	"&cirfnint;":                        {Codepoints: []rune{10768}, Characters: "\u2A10"},
	"&cirmid;":                          {Codepoints: []rune{10991}, Characters: "\u2AEF"},
	"&cirscir;":                         {Codepoints: []rune{10690}, Characters: "\u29C2"},
	"&ClockwiseContourIntegral;":        {Codepoints: []rune{8754}, Characters: "\u2232"},
	"&CloseCurlyDoubleQuote;":           {Codepoints: []rune{8221}, Characters: "\u201D"},
	"&CloseCurlyQuote;":                 {Codepoints: []rune{8217}, Characters: "\u2019"},
	"&clubs;":                           {Codepoints: []rune{9827}, Characters: "\u2663"},
	"&clubsuit;":                        {Codepoints: []rune{9827}, Characters: "\u2663"},
	"&colon;":                           {Codepoints: []rune{58}, Characters: ":"},
	"&Colon;":                           {Codepoints: []rune{8759}, Characters: "\u2237"},
	"&Colone;":                          {Codepoints: []rune{10868}, Characters: "\u2A74"},
	"&colone;":                          {Codepoints: []rune{8788}, Characters: "\u2254"},
	"&coloneq;":                         {Codepoints: []rune{8788}, Characters: "\u2254"},
	"&comma;":                           {Codepoints: []rune{44}, Characters: ","},
	"&commat;":                          {Codepoints: []rune{64}, Characters: "@"},
	"&comp;":                            {Codepoints: []rune{8705}, Characters: "\u2201"},
	"&compfn;":                          {Codepoints: []rune{8728}, Characters: "\u2218"},
	"&complement;":                      {Codepoints: []rune{8705}, Characters: "\u2201"},
	"&complexes;":                       {Codepoints: []rune{8450}, Characters: "\u2102"},
	"&cong;":                            {Codepoints: []rune{8773}, Characters: "\u2245"},
	"&congdot;":                         {Codepoints: []rune{10861}, Characters: "\u2A6D"},
	"&Congruent;":                       {Codepoints: []rune{8801}, Characters: "\u2261"},
	"&conint;":                          {Codepoints: []rune{8750}, Characters: "\u222E"},
	"&Conint;":                          {Codepoints: []rune{8751}, Characters: "\u222F"},
	"&ContourIntegral;":                 {Codepoints: []rune{8750}, Characters: "\u222E"},
	"&copf;":                            {Codepoints: []rune{120148}, Characters: "\U0001D554"},
	"&Copf;":                            {Codepoints: []rune{8450}, Characters: "\u2102"},
	"&coprod;":                          {Codepoints: []rune{8720}, Characters: "\u2210"},
	"&Coproduct;":                       {Codepoints: []rune{8720}, Characters: "\u2210"},
	"&copy;":                            {Codepoints: []rune{169}, Characters: "\u00A9"},
	"&copy":                             {Codepoints: []rune{169}, Characters: "\u00A9"},
	"&COPY;":                            {Codepoints: []rune{169}, Characters: "\u00A9"},
	"&COPY":                             {Codepoints: []rune{169}, Characters: "\u00A9"},
	"&copysr;":                          {Codepoints: []rune{8471}, Characters: "\u2117"},
	"&CounterClockwiseContourIntegral;": {Codepoints: []rune{8755}, Characters: "\u2233"},
	"&crarr;":                           {Codepoints: []rune{8629}, Characters: "\u21B5"},
	"&cross;":                           {Codepoints: []rune{10007}, Characters: "\u2717"},
	"&Cross;":                           {Codepoints: []rune{10799}, Characters: "\u2A2F"},
	"&Cscr;":                            {Codepoints: []rune{119966}, Characters: "\U0001D49E"},
	"&cscr;":                            {Codepoints: []rune{119992}, Characters: "\U0001D4B8"},
	"&csub;":                            {Codepoints: []rune{10959}, Characters: "\u2ACF"},
	"&csube;":                           {Codepoints: []rune{10961}, Characters: "\u2AD1"},
	"&csup;":                            {Codepoints: []rune{10960}, Characters: "\u2AD0"},
	"&csupe;":                           {Codepoints: []rune{10962}, Characters: "\u2AD2"},
	"&ctdot;":                           {Codepoints: []rune{8943}, Characters: "\u22EF"},
	"&cudarrl;":                         {Codepoints: []rune{10552}, Characters: "\u2938"},
	"&cudarrr;":                         {Codepoints: []rune{10549}, Characters: "\u2935"},
	"&cuepr;":                           {Codepoints: []rune{8926}, Characters: "\u22DE"},
	"&cuesc;":                           {Codepoints: []rune{8927}, Characters: "\u22DF"},
	"&cularr;":                          {Codepoints: []rune{8630}, Characters: "\u21B6"},
	"&cularrp;":                         {Codepoints: []rune{10557}, Characters: "\u293D"},
	"&cupbrcap;":                        {Codepoints: []rune{10824}, Characters: "\u2A48"},
	"&cupcap;":                          {Codepoints: []rune{10822}, Characters: "\u2A46"},
	"&CupCap;":                          {Codepoints: []rune{8781}, Characters: "\u224D"},
	"&cup;":                             {Codepoints: []rune{8746}, Characters: "\u222A"},
	"&Cup;":                             {Codepoints: []rune{8915}, Characters: "\u22D3"},
	"&cupcup;":                          {Codepoints: []rune{10826}, Characters: "\u2A4A"},
	"&cupdot;":                          {Codepoints: []rune{8845}, Characters: "\u228D"},
	"&cupor;":                           {Codepoints: []rune{10821}, Characters: "\u2A45"},
	"&cups;":                            {Codepoints: []rune{8746, 65024}, Characters: "\u222A\uFE00"},
	"&curarr;":                          {Codepoints: []rune{8631}, Characters: "\u21B7"},
	"&curarrm;":                         {Codepoints: []rune{10556}, Characters: "\u293C"},
	"&curlyeqprec;":                     {Codepoints: []rune{8926}, Characters: "\u22DE"},
	"&curlyeqsucc;":                     {Codepoints: []rune{8927}, Characters: "\u22DF"},
	"&curlyvee;":                        {Codepoints: []rune{8910}, Characters: "\u22CE"},
	"&curlywedge;":                      {Codepoints: []rune{8911}, Characters: "\u22CF"},
	"&curren;":                          {Codepoints: []rune{164}, Characters: "\u00A4"},
	"&curren":                           {Codepoints: []rune{164}, Characters: "\u00A4"},
	"&curvearrowleft;":                  {Codepoints: []rune{8630}, Characters: "\u21B6"},
	"&curvearrowright;":                 {Codepoints: []rune{8631}, Characters: "\u21B7"},
	"&cuvee;":                           {Codepoints: []rune{8910}, Characters: "\u22CE"},
	"&cuwed;":                           {Codepoints: []rune{8911}, Characters: "\u22CF"},
	"&cwconint;":                        {Codepoints: []rune{8754}, Characters: "\u2232"},
	"&cwint;":                           {Codepoints: []rune{8753}, Characters: "\u2231"},
	"&cylcty;":                          {Codepoints: []rune{9005}, Characters: "\u232D"},
	"&dagger;":                          {Codepoints: []rune{8224}, Characters: "\u2020"},
	"&Dagger;":                          {Codepoints: []rune{8225}, Characters: "\u2021"},
	"&daleth;":                          {Codepoints: []rune{8504}, Characters: "\u2138"},
	"&darr;":                            {Codepoints: []rune{8595}, Characters: "\u2193"},
	"&Darr;":                            {Codepoints: []rune{8609}, Characters: "\u21A1"},
	"&dArr;":                            {Codepoints: []rune{8659}, Characters: "\u21D3"},
	"&dash;":                            {Codepoints: []rune{8208}, Characters: "\u2010"},
	"&Dashv;":                           {Codepoints: []rune{10980}, Characters: "\u2AE4"},
	"&dashv;":                           {Codepoints: []rune{8867}, Characters: "\u22A3"},
	"&dbkarow;":                         {Codepoints: []rune{10511}, Characters: "\u290F"},
	"&dblac;":                           {Codepoints: []rune{733}, Characters: "\u02DD"},
	"&Dcaron;":                          {Codepoints: []rune{270}, Characters: "\u010E"},
	"&dcaron;":                          {Codepoints: []rune{271}, Characters: "\u010F"},
	"&Dcy;":                             {Codepoints: []rune{1044}, Characters: "\u0414"},
	"&dcy;":                             {Codepoints: []rune{1076}, Characters: "\u0434"},
	"&ddagger;":                         {Codepoints: []rune{8225}, Characters: "\u2021"},
	"&ddarr;":                           {Codepoints: []rune{8650}, Characters: "\u21CA"},
	"&DD;":                              {Codepoints: []rune{8517}, Characters: "\u2145"},
	"&dd;":                              {Codepoints: []rune{8518}, Characters: "\u2146"},
	"&DDotrahd;":                        {Codepoints: []rune{10513}, Characters: "\u2911"},
	"&ddotseq;":                         {Codepoints: []rune{10871}, Characters: "\u2A77"},
	"&deg;":                             {Codepoints: []rune{176}, Characters: "\u00B0"},
	"&deg":                              {Codepoints: []rune{176}, Characters: "\u00B0"},
	"&Del;":                             {Codepoints: []rune{8711}, Characters: "\u2207"},
	"&Delta;":                           {Codepoints: []rune{916}, Characters: "\u0394"},
	"&delta;":                           {Codepoints: []rune{948}, Characters: "\u03B4"},
	"&demptyv;":                         {Codepoints: []rune{10673}, Characters: "\u29B1"},
	"&dfisht;":                          {Codepoints: []rune{10623}, Characters: "\u297F"},
	"&Dfr;":                             {Codepoints: []rune{120071}, Characters: "\U0001D507"},
	"&dfr;":                             {Codepoints: []rune{120097}, Characters: "\U0001D521"},
	"&dHar;":                            {Codepoints: []rune{10597}, Characters: "\u2965"},
	"&dharl;":                           {Codepoints: []rune{8643}, Characters: "\u21C3"},
	"&dharr;":                           {Codepoints: []rune{8642}, Characters: "\u21C2"},
	"&DiacriticalAcute;":                {Codepoints: []rune{180}, Characters: "\u00B4"},
	"&DiacriticalDot;":                  {Codepoints: []rune{729}, Characters: "\u02D9"},
	"&DiacriticalDoubleAcute;":          {Codepoints: []rune{733}, Characters: "\u02DD"},
	"&DiacriticalGrave;":                {Codepoints: []rune{96}, Characters: "`"},
	"&DiacriticalTilde;":                {Codepoints: []rune{732}, Characters: "\u02DC"},
	"&diam;":                            {Codepoints: []rune{8900}, Characters: "\u22C4"},
	"&diamond;":                         {Codepoints: []rune{8900}, Characters: "\u22C4"},
	"&Diamond;":                         {Codepoints: []rune{8900}, Characters: "\u22C4"},
	"&diamondsuit;":                     {Codepoints: []rune{9830}, Characters: "\u2666"},
	"&diams;":                           {Codepoints: []rune{9830}, Characters: "\u2666"},
	"&die;":                             {Codepoints: []rune{168}, Characters: "\u00A8"},
	"&DifferentialD;":                   {Codepoints: []rune{8518}, Characters: "\u2146"},
	"&digamma;":                         {Codepoints: []rune{989}, Characters: "\u03DD"},
	"&disin;":                           {Codepoints: []rune{8946}, Characters: "\u22F2"},
	"&div;":                             {Codepoints: []rune{247}, Characters: "\u00F7"},
	"&divide;":                          {Codepoints: []rune{247}, Characters: "\u00F7"},
	"&divide":                           {Codepoints: []rune{247}, Characters: "\u00F7"},
	"&divideontimes;":                   {Codepoints: []rune{8903}, Characters: "\u22C7"},
	"&divonx;":                          {Codepoints: []rune{8903}, Characters: "\u22C7"},
	"&DJcy;":                            {Codepoints: []rune{1026}, Characters: "\u0402"},
	"&djcy;":                            {Codepoints: []rune{1106}, Characters: "\u0452"},
	"&dlcorn;":                          {Codepoints: []rune{8990}, Characters: "\u231E"},
	"&dlcrop;":                          {Codepoints: []rune{8973}, Characters: "\u230D"},
	"&dollar;":                          {Codepoints: []rune{36}, Characters: "$"},
	"&Dopf;":                            {Codepoints: []rune{120123}, Characters: "\U0001D53B"},
	"&dopf;":                            {Codepoints: []rune{120149}, Characters: "\U0001D555"},
	"&Dot;":                             {Codepoints: []rune{168}, Characters: "\u00A8"},
	"&dot;":                             {Codepoints: []rune{729}, Characters: "\u02D9"},
	"&DotDot;":                          {Codepoints: []rune{8412}, Characters: "\u20DC"},
	"&doteq;":                           {Codepoints: []rune{8784}, Characters: "\u2250"},
	"&doteqdot;":                        {Codepoints: []rune{8785}, Characters: "\u2251"},
	"&DotEqual;":                        {Codepoints: []rune{8784}, Characters: "\u2250"},
	"&dotminus;":                        {Codepoints: []rune{8760}, Characters: "\u2238"},
	"&dotplus;":                         {Codepoints: []rune{8724}, Characters: "\u2214"},
	"&dotsquare;":                       {Codepoints: []rune{8865}, Characters: "\u22A1"},
	"&doublebarwedge;":                  {Codepoints: []rune{8966}, Characters: "\u2306"},
	"&DoubleContourIntegral;":           {Codepoints: []rune{8751}, Characters: "\u222F"},
	"&DoubleDot;":                       {Codepoints: []rune{168}, Characters: "\u00A8"},
	"&DoubleDownArrow;":                 {Codepoints: []rune{8659}, Characters: "\u21D3"},
	"&DoubleLeftArrow;":                 {Codepoints: []rune{8656}, Characters: "\u21D0"},
	"&DoubleLeftRightArrow;":            {Codepoints: []rune{8660}, Characters: "\u21D4"},
	"&DoubleLeftTee;":                   {Codepoints: []rune{10980}, Characters: "\u2AE4"},
	"&DoubleLongLeftArrow;":             {Codepoints: []rune{10232}, Characters: "\u27F8"},
	"&DoubleLongLeftRightArrow;":        {Codepoints: []rune{10234}, Characters: "\u27FA"},
	"&DoubleLongRightArrow;":            {Codepoints: []rune{10233}, Characters: "\u27F9"},
	"&DoubleRightArrow;":                {Codepoints: []rune{8658}, Characters: "\u21D2"},
	"&DoubleRightTee;":                  {Codepoints: []rune{8872}, Characters: "\u22A8"},
	"&DoubleUpArrow;":                   {Codepoints: []rune{8657}, Characters: "\u21D1"},
	"&DoubleUpDownArrow;":               {Codepoints: []rune{8661}, Characters: "\u21D5"},
	"&DoubleVerticalBar;":               {Codepoints: []rune{8741}, Characters: "\u2225"},
	"&DownArrowBar;":                    {Codepoints: []rune{10515}, Characters: "\u2913"},
	"&downarrow;":                       {Codepoints: []rune{8595}, Characters: "\u2193"},
	"&DownArrow;":                       {Codepoints: []rune{8595}, Characters: "\u2193"},
	"&Downarrow;":                       {Codepoints: []rune{8659}, Characters: "\u21D3"},
	"&DownArrowUpArrow;":                {Codepoints: []rune{8693}, Characters: "\u21F5"},
	"&DownBreve;":                       {Codepoints: []rune{785}, Characters: "\u0311"},
	"&downdownarrows;":                  {Codepoints: []rune{8650}, Characters: "\u21CA"},
	"&downharpoonleft;":                 {Codepoints: []rune{8643}, Characters: "\u21C3"},
	"&downharpoonright;":                {Codepoints: []rune{8642}, Characters: "\u21C2"},
	"&DownLeftRightVector;":             {Codepoints: []rune{10576}, Characters: "\u2950"},
	"&DownLeftTeeVector;":               {Codepoints: []rune{10590}, Characters: "\u295E"},
	"&DownLeftVectorBar;":               {Codepoints: []rune{10582}, Characters: "\u2956"},
	"&DownLeftVector;":                  {Codepoints: []rune{8637}, Characters: "\u21BD"},
	"&DownRightTeeVector;":              {Codepoints: []rune{10591}, Characters: "\u295F"},
	"&DownRightVectorBar;":              {Codepoints: []rune{10583}, Characters: "\u2957"},
	"&DownRightVector;":                 {Codepoints: []rune{8641}, Characters: "\u21C1"},
	"&DownTeeArrow;":                    {Codepoints: []rune{8615}, Characters: "\u21A7"},
	"&DownTee;":                         {Codepoints: []rune{8868}, Characters: "\u22A4"},
	"&drbkarow;":                        {Codepoints: []rune{10512}, Characters: "\u2910"},
	"&drcorn;":                          {Codepoints: []rune{8991}, Characters: "\u231F"},
	"&drcrop;":                          {Codepoints: []rune{8972}, Characters: "\u230C"},
	"&Dscr;":                            {Codepoints: []rune{119967}, Characters: "\U0001D49F"},
	"&dscr;":                            {Codepoints: []rune{119993}, Characters: "\U0001D4B9"},
	"&DScy;":                            {Codepoints: []rune{1029}, Characters: "\u0405"},
	"&dscy;":                            {Codepoints: []rune{1109}, Characters: "\u0455"},
	"&dsol;":                            {Codepoints: []rune{10742}, Characters: "\u29F6"},
	"&Dstrok;":                          {Codepoints: []rune{272}, Characters: "\u0110"},
	"&dstrok;":                          {Codepoints: []rune{273}, Characters: "\u0111"},
	"&dtdot;":                           {Codepoints: []rune{8945}, Characters: "\u22F1"},
	"&dtri;":                            {Codepoints: []rune{9663}, Characters: "\u25BF"},
	"&dtrif;":                           {Codepoints: []rune{9662}, Characters: "\u25BE"},
	"&duarr;":                           {Codepoints: []rune{8693}, Characters: "\u21F5"},
	"&duhar;":                           {Codepoints: []rune{10607}, Characters: "\u296F"},
	"&dwangle;":                         {Codepoints: []rune{10662}, Characters: "\u29A6"},
	"&DZcy;":                            {Codepoints: []rune{1039}, Characters: "\u040F"},
	"&dzcy;":                            {Codepoints: []rune{1119}, Characters: "\u045F"},
	"&dzigrarr;":                        {Codepoints: []rune{10239}, Characters: "\u27FF"},
	"&Eacute;":                          {Codepoints: []rune{201}, Characters: "\u00C9"},
	"&Eacute":                           {Codepoints: []rune{201}, Characters: "\u00C9"},
	"&eacute;":                          {Codepoints: []rune{233}, Characters: "\u00E9"},
	"&eacute":                           {Codepoints: []rune{233}, Characters: "\u00E9"},
	"&easter;":                          {Codepoints: []rune{10862}, Characters: "\u2A6E"},
	"&Ecaron;":                          {Codepoints: []rune{282}, Characters: "\u011A"},
	"&ecaron;":                          {Codepoints: []rune{283}, Characters: "\u011B"},
	"&Ecirc;":                           {Codepoints: []rune{202}, Characters: "\u00CA"},
	"&Ecirc":                            {Codepoints: []rune{202}, Characters: "\u00CA"},
	"&ecirc;":                           {Codepoints: []rune{234}, Characters: "\u00EA"},
	"&ecirc":                            {Codepoints: []rune{234}, Characters: "\u00EA"},
	"&ecir;":                            {Codepoints: []rune{8790}, Characters: "\u2256"},
	"&ecolon;":                          {Codepoints: []rune{8789}, Characters: "\u2255"},
	"&Ecy;":                             {Codepoints: []rune{1069}, Characters: "\u042D"},
	"&ecy;":                             {Codepoints: []rune{1101}, Characters: "\u044D"},
	"&eDDot;":                           {Codepoints: []rune{10871}, Characters: "\u2A77"},
	"&Edot;":                            {Codepoints: []rune{278}, Characters: "\u0116"},
	"&edot;":                            {Codepoints: []rune{279}, Characters: "\u0117"},
	"&eDot;":                            {Codepoints: []rune{8785}, Characters: "\u2251"},
	"&ee;":                              {Codepoints: []rune{8519}, Characters: "\u2147"},
	"&efDot;":                           {Codepoints: []rune{8786}, Characters: "\u2252"},
	"&Efr;":                             {Codepoints: []rune{120072}, Characters: "\U0001D508"},
	"&efr;":                             {Codepoints: []rune{120098}, Characters: "\U0001D522"},
	"&eg;":                              {Codepoints: []rune{10906}, Characters: "\u2A9A"},
	"&Egrave;":                          {Codepoints: []rune{200}, Characters: "\u00C8"},
	"&Egrave":                           {Codepoints: []rune{200}, Characters: "\u00C8"},
	"&egrave;":                          {Codepoints: []rune{232}, Characters: "\u00E8"},
	"&egrave":                           {Codepoints: []rune{232}, Characters: "\u00E8"},
	"&egs;":                             {Codepoints: []rune{10902}, Characters: "\u2A96"},
	"&egsdot;":                          {Codepoints: []rune{10904}, Characters: "\u2A98"},
	"&el;":                              {Codepoints: []rune{10905}, Characters: "\u2A99"},
	"&Element;":                         {Codepoints: []rune{8712}, Characters: "\u2208"},
	"&elinters;":                        {Codepoints: []rune{9191}, Characters: "\u23E7"},
	"&ell;":                             {Codepoints: []rune{8467}, Characters: "\u2113"},
	"&els;":                             {Codepoints: []rune{10901}, Characters: "\u2A95"},
	"&elsdot;":                          {Codepoints: []rune{10903}, Characters: "\u2A97"},
	"&Emacr;":                           {Codepoints: []rune{274}, Characters: "\u0112"},
	"&emacr;":                           {Codepoints: []rune{275}, Characters: "\u0113"},
	"&empty;":                           {Codepoints: []rune{8709}, Characters: "\u2205"},
	"&emptyset;":                        {Codepoints: []rune{8709}, Characters: "\u2205"},
	"&EmptySmallSquare;":                {Codepoints: []rune{9723}, Characters: "\u25FB"},
	"&emptyv;":                          {Codepoints: []rune{8709}, Characters: "\u2205"},
	"&EmptyVerySmallSquare;":            {Codepoints: []rune{9643}, Characters: "\u25AB"},
	"&emsp13;":                          {Codepoints: []rune{8196}, Characters: "\u2004"},
	"&emsp14;":                          {Codepoints: []rune{8197}, Characters: "\u2005"},
	"&emsp;":                            {Codepoints: []rune{8195}, Characters: "\u2003"},
	"&ENG;":                             {Codepoints: []rune{330}, Characters: "\u014A"},
	"&eng;":                             {Codepoints: []rune{331}, Characters: "\u014B"},
	"&ensp;":                            {Codepoints: []rune{8194}, Characters: "\u2002"},
	"&Eogon;":                           {Codepoints: []rune{280}, Characters: "\u0118"},
	"&eogon;":                           {Codepoints: []rune{281}, Characters: "\u0119"},
	"&Eopf;":                            {Codepoints: []rune{120124}, Characters: "\U0001D53C"},
	"&eopf;":                            {Codepoints: []rune{120150}, Characters: "\U0001D556"},
	"&epar;":                            {Codepoints: []rune{8917}, Characters: "\u22D5"},
	"&eparsl;":                          {Codepoints: []rune{10723}, Characters: "\u29E3"},
	"&eplus;":                           {Codepoints: []rune{10865}, Characters: "\u2A71"},
	"&epsi;":                            {Codepoints: []rune{949}, Characters: "\u03B5"},
	"&Epsilon;":                         {Codepoints: []rune{917}, Characters: "\u0395"},
	"&epsilon;":                         {Codepoints: []rune{949}, Characters: "\u03B5"},
	"&epsiv;":                           {Codepoints: []rune{1013}, Characters: "\u03F5"},
	"&eqcirc;":                          {Codepoints: []rune{8790}, Characters: "\u2256"},
	"&eqcolon;":                         {Codepoints: []rune{8789}, Characters: "\u2255"},
	"&eqsim;":                           {Codepoints: []rune{8770}, Characters: "\u2242"},
	"&eqslantgtr;":                      {Codepoints: []rune{10902}, Characters: "\u2A96"},
	"&eqslantless;":                     {Codepoints: []rune{10901}, Characters: "\u2A95"},
	"&Equal;":                           {Codepoints: []rune{10869}, Characters: "\u2A75"},
	"&equals;":                          {Codepoints: []rune{61}, Characters: "="},
	"&EqualTilde;":                      {Codepoints: []rune{8770}, Characters: "\u2242"},
	"&equest;":                          {Codepoints: []rune{8799}, Characters: "\u225F"},
	"&Equilibrium;":                     {Codepoints: []rune{8652}, Characters: "\u21CC"},
	"&equiv;":                           {Codepoints: []rune{8801}, Characters: "\u2261"},
	"&equivDD;":                         {Codepoints: []rune{10872}, Characters: "\u2A78"},
	"&eqvparsl;":                        {Codepoints: []rune{10725}, Characters: "\u29E5"},
	"&erarr;":                           {Codepoints: []rune{10609}, Characters: "\u2971"},
	"&erDot;":                           {Codepoints: []rune{8787}, Characters: "\u2253"},
	"&escr;":                            {Codepoints: []rune{8495}, Characters: "\u212F"},
	"&Escr;":                            {Codepoints: []rune{8496}, Characters: "\u2130"},
	"&esdot;":                           {Codepoints: []rune{8784}, Characters: "\u2250"},
	"&Esim;":                            {Codepoints: []rune{10867}, Characters: "\u2A73"},
	"&esim;":                            {Codepoints: []rune{8770}, Characters: "\u2242"},
	"&Eta;":                             {Codepoints: []rune{919}, Characters: "\u0397"},
	"&eta;":                             {Codepoints: []rune{951}, Characters: "\u03B7"},
	"&ETH;":                             {Codepoints: []rune{208}, Characters: "\u00D0"},
	"&ETH":                              {Codepoints: []rune{208}, Characters: "\u00D0"},
	"&eth;":                             {Codepoints: []rune{240}, Characters: "\u00F0"},
	"&eth":                              {Codepoints: []rune{240}, Characters: "\u00F0"},
	"&Euml;":                            {Codepoints: []rune{203}, Characters: "\u00CB"},
	"&Euml":                             {Codepoints: []rune{203}, Characters: "\u00CB"},
	"&euml;":                            {Codepoints: []rune{235}, Characters: "\u00EB"},
	"&euml":                             {Codepoints: []rune{235}, Characters: "\u00EB"},
	"&euro;":                            {Codepoints: []rune{8364}, Characters: "\u20AC"},
	"&excl;":                            {Codepoints: []rune{33}, Characters: "!"},
	"&exist;":                           {Codepoints: []rune{8707}, Characters: "\u2203"},
	"&Exists;":                          {Codepoints: []rune{8707}, Characters: "\u2203"},
	"&expectation;":                     {Codepoints: []rune{8496}, Characters: "\u2130"},
	"&exponentiale;":                    {Codepoints: []rune{8519}, Characters: "\u2147"},
	"&ExponentialE;":                    {Codepoints: []rune{8519}, Characters: "\u2147"},
	"&fallingdotseq;":                   {Codepoints: []rune{8786}, Characters: "\u2252"},
	"&Fcy;":                             {Codepoints: []rune{1060}, Characters: "\u0424"},
	"&fcy;":                             {Codepoints: []rune{1092}, Characters: "\u0444"},
	"&female;":                          {Codepoints: []rune{9792}, Characters: "\u2640"},
	"&ffilig;":                          {Codepoints: []rune{64259}, Characters: "\uFB03"},
	"&fflig;":                           {Codepoints: []rune{64256}, Characters: "\uFB00"},
	"&ffllig;":                          {Codepoints: []rune{64260}, Characters: "\uFB04"},
	"&Ffr;":                             {Codepoints: []rune{120073}, Characters: "\U0001D509"},
	"&ffr;":                             {Codepoints: []rune{120099}, Characters: "\U0001D523"},
	"&filig;":                           {Codepoints: []rune{64257}, Characters: "\uFB01"},
	"&FilledSmallSquare;":               {Codepoints: []rune{9724}, Characters: "\u25FC"},
	"&FilledVerySmallSquare;":           {Codepoints: []rune{9642}, Characters: "\u25AA"},
	"&fjlig;":                           {Codepoints: []rune{102, 106}, Characters: "fj"},
	"&flat;":                            {Codepoints: []rune{9837}, Characters: "\u266D"},
	"&fllig;":                           {Codepoints: []rune{64258}, Characters: "\uFB02"},
	"&fltns;":                           {Codepoints: []rune{9649}, Characters: "\u25B1"},
	"&fnof;":                            {Codepoints: []rune{402}, Characters: "\u0192"},
	"&Fopf;":                            {Codepoints: []rune{120125}, Characters: "\U0001D53D"},
	"&fopf;":                            {Codepoints: []rune{120151}, Characters: "\U0001D557"},
	"&forall;":                          {Codepoints: []rune{8704}, Characters: "\u2200"},
	"&ForAll;":                          {Codepoints: []rune{8704}, Characters: "\u2200"},
	"&fork;":                            {Codepoints: []rune{8916}, Characters: "\u22D4"},
	"&forkv;":                           {Codepoints: []rune{10969}, Characters: "\u2AD9"},
	"&Fouriertrf;":                      {Codepoints: []rune{8497}, Characters: "\u2131"},
	"&fpartint;":                        {Codepoints: []rune{10765}, Characters: "\u2A0D"},
	"&frac12;":                          {Codepoints: []rune{189}, Characters: "\u00BD"},
	"&frac12":                           {Codepoints: []rune{189}, Characters: "\u00BD"},
	"&frac13;":                          {Codepoints: []rune{8531}, Characters: "\u2153"},
	"&frac14;":                          {Codepoints: []rune{188}, Characters: "\u00BC"},
	"&frac14":                           {Codepoints: []rune{188}, Characters: "\u00BC"},
	"&frac15;":                          {Codepoints: []rune{8533}, Characters: "\u2155"},
	"&frac16;":                          {Codepoints: []rune{8537}, Characters: "\u2159"},
	"&frac18;":                          {Codepoints: []rune{8539}, Characters: "\u215B"},
	"&frac23;":                          {Codepoints: []rune{8532}, Characters: "\u2154"},
	"&frac25;":                          {Codepoints: []rune{8534}, Characters: "\u2156"},
	"&frac34;":                          {Codepoints: []rune{190}, Characters: "\u00BE"},
	"&frac34":                           {Codepoints: []rune{190}, Characters: "\u00BE"},
	"&frac35;":                          {Codepoints: []rune{8535}, Characters: "\u2157"},
	"&frac38;":                          {Codepoints: []rune{8540}, Characters: "\u215C"},
	"&frac45;":                          {Codepoints: []rune{8536}, Characters: "\u2158"},
	"&frac56;":                          {Codepoints: []rune{8538}, Characters: "\u215A"},
	"&frac58;":                          {Codepoints: []rune{8541}, Characters: "\u215D"},
	"&frac78;":                          {Codepoints: []rune{8542}, Characters: "\u215E"},
	"&frasl;":                           {Codepoints: []rune{8260}, Characters: "\u2044"},
	"&frown;":                           {Codepoints: []rune{8994}, Characters: "\u2322"},
	"&fscr;":                            {Codepoints: []rune{119995}, Characters: "\U0001D4BB"},
	"&Fscr;":                            {Codepoints: []rune{8497}, Characters: "\u2131"},
	"&gacute;":                          {Codepoints: []rune{501}, Characters: "\u01F5"},
	"&Gamma;":                           {Codepoints: []rune{915}, Characters: "\u0393"},
	"&gamma;":                           {Codepoints: []rune{947}, Characters: "\u03B3"},
	"&Gammad;":                          {Codepoints: []rune{988}, Characters: "\u03DC"},
	"&gammad;":                          {Codepoints: []rune{989}, Characters: "\u03DD"},
	"&gap;":                             {Codepoints: []rune{10886}, Characters: "\u2A86"},
	"&Gbreve;":                          {Codepoints: []rune{286}, Characters: "\u011E"},
	"&gbreve;":                          {Codepoints: []rune{287}, Characters: "\u011F"},
	"&Gcedil;":                          {Codepoints: []rune{290}, Characters: "\u0122"},
	"&Gcirc;":                           {Codepoints: []rune{284}, Characters: "\u011C"},
	"&gcirc;":                           {Codepoints: []rune{285}, Characters: "\u011D"},
	"&Gcy;":                             {Codepoints: []rune{1043}, Characters: "\u0413"},
	"&gcy;":                             {Codepoints: []rune{1075}, Characters: "\u0433"},
	"&Gdot;":                            {Codepoints: []rune{288}, Characters: "\u0120"},
	"&gdot;":                            {Codepoints: []rune{289}, Characters: "\u0121"},
	"&ge;":                              {Codepoints: []rune{8805}, Characters: "\u2265"},
	"&gE;":                              {Codepoints: []rune{8807}, Characters: "\u2267"},
	"&gEl;":                             {Codepoints: []rune{10892}, Characters: "\u2A8C"},
	"&gel;":                             {Codepoints: []rune{8923}, Characters: "\u22DB"},
	"&geq;":                             {Codepoints: []rune{8805}, Characters: "\u2265"},
	"&geqq;":                            {Codepoints: []rune{8807}, Characters: "\u2267"},
	"&geqslant;":                        {Codepoints: []rune{10878}, Characters: "\u2A7E"},
	"&gescc;":                           {Codepoints: []rune{10921}, Characters: "\u2AA9"},
	"&ges;":                             {Codepoints: []rune{10878}, Characters: "\u2A7E"},
	"&gesdot;":                          {Codepoints: []rune{10880}, Characters: "\u2A80"},
	"&gesdoto;":                         {Codepoints: []rune{10882}, Characters: "\u2A82"},
	"&gesdotol;":                        {Codepoints: []rune{10884}, Characters: "\u2A84"},
	"&gesl;":                            {Codepoints: []rune{8923, 65024}, Characters: "\u22DB\uFE00"},
	"&gesles;":                          {Codepoints: []rune{10900}, Characters: "\u2A94"},
	"&Gfr;":                             {Codepoints: []rune{120074}, Characters: "\U0001D50A"},
	"&gfr;":                             {Codepoints: []rune{120100}, Characters: "\U0001D524"},
	"&gg;":                              {Codepoints: []rune{8811}, Characters: "\u226B"},
	"&Gg;":                              {Codepoints: []rune{8921}, Characters: "\u22D9"},
	"&ggg;":                             {Codepoints: []rune{8921}, Characters: "\u22D9"},
	"&gimel;":                           {Codepoints: []rune{8503}, Characters: "\u2137"},
	"&GJcy;":                            {Codepoints: []rune{1027}, Characters: "\u0403"},
	"&gjcy;":                            {Codepoints: []rune{1107}, Characters: "\u0453"},
	"&gla;":                             {Codepoints: []rune{10917}, Characters: "\u2AA5"},
	"&gl;":                              {Codepoints: []rune{8823}, Characters: "\u2277"},
	"&glE;":                             {Codepoints: []rune{10898}, Characters: "\u2A92"},
	"&glj;":                             {Codepoints: []rune{10916}, Characters: "\u2AA4"},
	"&gnap;":                            {Codepoints: []rune{10890}, Characters: "\u2A8A"},
	"&gnapprox;":                        {Codepoints: []rune{10890}, Characters: "\u2A8A"},
	"&gne;":                             {Codepoints: []rune{10888}, Characters: "\u2A88"},
	"&gnE;":                             {Codepoints: []rune{8809}, Characters: "\u2269"},
	"&gneq;":                            {Codepoints: []rune{10888}, Characters: "\u2A88"},
	"&gneqq;":                           {Codepoints: []rune{8809}, Characters: "\u2269"},
	"&gnsim;":                           {Codepoints: []rune{8935}, Characters: "\u22E7"},
	"&Gopf;":                            {Codepoints: []rune{120126}, Characters: "\U0001D53E"},
	"&gopf;":                            {Codepoints: []rune{120152}, Characters: "\U0001D558"},
	"&grave;":                           {Codepoints: []rune{96}, Characters: "`"},
	"&GreaterEqual;":                    {Codepoints: []rune{8805}, Characters: "\u2265"},
	"&GreaterEqualLess;":                {Codepoints: []rune{8923}, Characters: "\u22DB"},
	"&GreaterFullEqual;":                {Codepoints: []rune{8807}, Characters: "\u2267"},
	"&GreaterGreater;":                  {Codepoints: []rune{10914}, Characters: "\u2AA2"},
	"&GreaterLess;":                     {Codepoints: []rune{8823}, Characters: "\u2277"},
	"&GreaterSlantEqual;":               {Codepoints: []rune{10878}, Characters: "\u2A7E"},
	"&GreaterTilde;":                    {Codepoints: []rune{8819}, Characters: "\u2273"},
	"&Gscr;":                            {Codepoints: []rune{119970}, Characters: "\U0001D4A2"},
	"&gscr;":                            {Codepoints: []rune{8458}, Characters: "\u210A"},
	"&gsim;":                            {Codepoints: []rune{8819}, Characters: "\u2273"},
	"&gsime;":                           {Codepoints: []rune{10894}, Characters: "\u2A8E"},
	"&gsiml;":                           {Codepoints: []rune{10896}, Characters: "\u2A90"},
	"&gtcc;":                            {Codepoints: []rune{10919}, Characters: "\u2AA7"},
	"&gtcir;":                           {Codepoints: []rune{10874}, Characters: "\u2A7A"},
	"&gt;":                              {Codepoints: []rune{62}, Characters: ">"},
	"&gt":                               {Codepoints: []rune{62}, Characters: ">"},
	"&GT;":                              {Codepoints: []rune{62}, Characters: ">"},
	"&GT":                               {Codepoints: []rune{62}, Characters: ">"},
	"&Gt;":                              {Codepoints: []rune{8811}, Characters: "\u226B"},
	"&gtdot;":                           {Codepoints: []rune{8919}, Characters: "\u22D7"},
	"&gtlPar;":                          {Codepoints: []rune{10645}, Characters: "\u2995"},
	"&gtquest;":                         {Codepoints: []rune{10876}, Characters: "\u2A7C"},
	"&gtrapprox;":                       {Codepoints: []rune{10886}, Characters: "\u2A86"},
	"&gtrarr;":                          {Codepoints: []rune{10616}, Characters: "\u2978"},
	"&gtrdot;":                          {Codepoints: []rune{8919}, Characters: "\u22D7"},
	"&gtreqless;":                       {Codepoints: []rune{8923}, Characters: "\u22DB"},
	"&gtreqqless;":                      {Codepoints: []rune{10892}, Characters: "\u2A8C"},
	"&gtrless;":                         {Codepoints: []rune{8823}, Characters: "\u2277"},
	"&gtrsim;":                          {Codepoints: []rune{8819}, Characters: "\u2273"},
	"&gvertneqq;":                       {Codepoints: []rune{8809, 65024}, Characters: "\u2269\uFE00"},
	"&gvnE;":                            {Codepoints: []rune{8809, 65024}, Characters: "\u2269\uFE00"},
	"&Hacek;":                           {Codepoints: []rune{711}, Characters: "\u02C7"},
	"&hairsp;":                          {Codepoints: []rune{8202}, Characters: "\u200A"},
	"&half;":                            {Codepoints: []rune{189}, Characters: "\u00BD"},
	"&hamilt;":                          {Codepoints: []rune{8459}, Characters: "\u210B"},
	"&HARDcy;":                          {Codepoints: []rune{1066}, Characters: "\u042A"},
	"&hardcy;":                          {Codepoints: []rune{1098}, Characters: "\u044A"},
	"&harrcir;":                         {Codepoints: []rune{10568}, Characters: "\u2948"},
	"&harr;":                            {Codepoints: []rune{8596}, Characters: "\u2194"},
	"&hArr;":                            {Codepoints: []rune{8660}, Characters: "\u21D4"},
	"&harrw;":                           {Codepoints: []rune{8621}, Characters: "\u21AD"},
	"&Hat;":                             {Codepoints: []rune{94}, Characters: "^"},
	"&hbar;":                            {Codepoints: []rune{8463}, Characters: "\u210F"},
	"&Hcirc;":                           {Codepoints: []rune{292}, Characters: "\u0124"},
	"&hcirc;":                           {Codepoints: []rune{293}, Characters: "\u0125"},
	"&hearts;":                          {Codepoints: []rune{9829}, Characters: "\u2665"},
	"&heartsuit;":                       {Codepoints: []rune{9829}, Characters: "\u2665"},
	"&hellip;":                          {Codepoints: []rune{8230}, Characters: "\u2026"},
	"&hercon;":                          {Codepoints: []rune{8889}, Characters: "\u22B9"},
	"&hfr;":                             {Codepoints: []rune{120101}, Characters: "\U0001D525"},
	"&Hfr;":                             {Codepoints: []rune{8460}, Characters: "\u210C"},
	"&HilbertSpace;":                    {Codepoints: []rune{8459}, Characters: "\u210B"},
	"&hksearow;":                        {Codepoints: []rune{10533}, Characters: "\u2925"},
	"&hkswarow;":                        {Codepoints: []rune{10534}, Characters: "\u2926"},
	"&hoarr;":                           {Codepoints: []rune{8703}, Characters: "\u21FF"},
	"&homtht;":                          {Codepoints: []rune{8763}, Characters: "\u223B"},
	"&hookleftarrow;":                   {Codepoints: []rune{8617}, Characters: "\u21A9"},
	"&hookrightarrow;":                  {Codepoints: []rune{8618}, Characters: "\u21AA"},
	"&hopf;":                            {Codepoints: []rune{120153}, Characters: "\U0001D559"},
	"&Hopf;":                            {Codepoints: []rune{8461}, Characters: "\u210D"},
	"&horbar;":                          {Codepoints: []rune{8213}, Characters: "\u2015"},
	"&HorizontalLine;":                  {Codepoints: []rune{9472}, Characters: "\u2500"},
	"&hscr;":                            {Codepoints: []rune{119997}, Characters: "\U0001D4BD"},
	"&Hscr;":                            {Codepoints: []rune{8459}, Characters: "\u210B"},
	"&hslash;":                          {Codepoints: []rune{8463}, Characters: "\u210F"},
	"&Hstrok;":                          {Codepoints: []rune{294}, Characters: "\u0126"},
	"&hstrok;":                          {Codepoints: []rune{295}, Characters: "\u0127"},
	"&HumpDownHump;":                    {Codepoints: []rune{8782}, Characters: "\u224E"},
	"&HumpEqual;":                       {Codepoints: []rune{8783}, Characters: "\u224F"},
	"&hybull;":                          {Codepoints: []rune{8259}, Characters: "\u2043"},
	"&hyphen;":                          {Codepoints: []rune{8208}, Characters: "\u2010"},
	"&Iacute;":                          {Codepoints: []rune{205}, Characters: "\u00CD"},
	"&Iacute":                           {Codepoints: []rune{205}, Characters: "\u00CD"},
	"&iacute;":                          {Codepoints: []rune{237}, Characters: "\u00ED"},
	"&iacute":                           {Codepoints: []rune{237}, Characters: "\u00ED"},
	"&ic;":                              {Codepoints: []rune{8291}, Characters: "\u2063"},
	"&Icirc;":                           {Codepoints: []rune{206}, Characters: "\u00CE"},
	"&Icirc":                            {Codepoints: []rune{206}, Characters: "\u00CE"},
	"&icirc;":                           {Codepoints: []rune{238}, Characters: "\u00EE"},
	"&icirc":                            {Codepoints: []rune{238}, Characters: "\u00EE"},
	"&Icy;":                             {Codepoints: []rune{1048}, Characters: "\u0418"},
	"&icy;":                             {Codepoints: []rune{1080}, Characters: "\u0438"},
	"&Idot;":                            {Codepoints: []rune{304}, Characters: "\u0130"},
	"&IEcy;":                            {Codepoints: []rune{1045}, Characters: "\u0415"},
	"&iecy;":                            {Codepoints: []rune{1077}, Characters: "\u0435"},
	"&iexcl;":                           {Codepoints: []rune{161}, Characters: "\u00A1"},
	"&iexcl":                            {Codepoints: []rune{161}, Characters: "\u00A1"},
	"&iff;":                             {Codepoints: []rune{8660}, Characters: "\u21D4"},
	"&ifr;":                             {Codepoints: []rune{120102}, Characters: "\U0001D526"},
	"&Ifr;":                             {Codepoints: []rune{8465}, Characters: "\u2111"},
	"&Igrave;":                          {Codepoints: []rune{204}, Characters: "\u00CC"},
	"&Igrave":                           {Codepoints: []rune{204}, Characters: "\u00CC"},
	"&igrave;":                          {Codepoints: []rune{236}, Characters: "\u00EC"},
	"&igrave":                           {Codepoints: []rune{236}, Characters: "\u00EC"},
	"&ii;":                              {Codepoints: []rune{8520}, Characters: "\u2148"},
	"&iiiint;":                          {Codepoints: []rune{10764}, Characters: "\u2A0C"},
	"&iiint;":                           {Codepoints: []rune{8749}, Characters: "\u222D"},
	"&iinfin;":                          {Codepoints: []rune{10716}, Characters: "\u29DC"},
	"&iiota;":                           {Codepoints: []rune{8489}, Characters: "\u2129"},
	"&IJlig;":                           {Codepoints: []rune{306}, Characters: "\u0132"},
	"&ijlig;":                           {Codepoints: []rune{307}, Characters: "\u0133"},
	"&Imacr;":                           {Codepoints: []rune{298}, Characters: "\u012A"},
	"&imacr;":                           {Codepoints: []rune{299}, Characters: "\u012B"},
	"&image;":                           {Codepoints: []rune{8465}, Characters: "\u2111"},
	"&ImaginaryI;":                      {Codepoints: []rune{8520}, Characters: "\u2148"},
	"&imagline;":                        {Codepoints: []rune{8464}, Characters: "\u2110"},
	"&imagpart;":                        {Codepoints: []rune{8465}, Characters: "\u2111"},
	"&imath;":                           {Codepoints: []rune{305}, Characters: "\u0131"},
	"&Im;":                              {Codepoints: []rune{8465}, Characters: "\u2111"},
	"&imof;":                            {Codepoints: []rune{8887}, Characters: "\u22B7"},
	"&imped;":                           {Codepoints: []rune{437}, Characters: "\u01B5"},
	"&Implies;":                         {Codepoints: []rune{8658}, Characters: "\u21D2"},
	"&incare;":                          {Codepoints: []rune{8453}, Characters: "\u2105"},
	"&in;":                              {Codepoints: []rune{8712}, Characters: "\u2208"},
	"&infin;":                           {Codepoints: []rune{8734}, Characters: "\u221E"},
	"&infintie;":                        {Codepoints: []rune{10717}, Characters: "\u29DD"},
	"&inodot;":                          {Codepoints: []rune{305}, Characters: "\u0131"},
	"&intcal;":                          {Codepoints: []rune{8890}, Characters: "\u22BA"},
	"&int;":                             {Codepoints: []rune{8747}, Characters: "\u222B"},
	"&Int;":                             {Codepoints: []rune{8748}, Characters: "\u222C"},
	"&integers;":                        {Codepoints: []rune{8484}, Characters: "\u2124"},
	"&Integral;":                        {Codepoints: []rune{8747}, Characters: "\u222B"},
	"&intercal;":                        {Codepoints: []rune{8890}, Characters: "\u22BA"},
	"&Intersection;":                    {Codepoints: []rune{8898}, Characters: "\u22C2"},
	"&intlarhk;":                        {Codepoints: []rune{10775}, Characters: "\u2A17"},
	"&intprod;":                         {Codepoints: []rune{10812}, Characters: "\u2A3C"},
	"&InvisibleComma;":                  {Codepoints: []rune{8291}, Characters: "\u2063"},
	"&InvisibleTimes;":                  {Codepoints: []rune{8290}, Characters: "\u2062"},
	"&IOcy;":                            {Codepoints: []rune{1025}, Characters: "\u0401"},
	"&iocy;":                            {Codepoints: []rune{1105}, Characters: "\u0451"},
	"&Iogon;":                           {Codepoints: []rune{302}, Characters: "\u012E"},
	"&iogon;":                           {Codepoints: []rune{303}, Characters: "\u012F"},
	"&Iopf;":                            {Codepoints: []rune{120128}, Characters: "\U0001D540"},
	"&iopf;":                            {Codepoints: []rune{120154}, Characters: "\U0001D55A"},
	"&Iota;":                            {Codepoints: []rune{921}, Characters: "\u0399"},
	"&iota;":                            {Codepoints: []rune{953}, Characters: "\u03B9"},
	"&iprod;":                           {Codepoints: []rune{10812}, Characters: "\u2A3C"},
	"&iquest;":                          {Codepoints: []rune{191}, Characters: "\u00BF"},
	"&iquest":                           {Codepoints: []rune{191}, Characters: "\u00BF"},
	"&iscr;":                            {Codepoints: []rune{119998}, Characters: "\U0001D4BE"},
	"&Iscr;":                            {Codepoints: []rune{8464}, Characters: "\u2110"},
	"&isin;":                            {Codepoints: []rune{8712}, Characters: "\u2208"},
	"&isindot;":                         {Codepoints: []rune{8949}, Characters: "\u22F5"},
	"&isinE;":                           {Codepoints: []rune{8953}, Characters: "\u22F9"},
	"&isins;":                           {Codepoints: []rune{8948}, Characters: "\u22F4"},
	"&isinsv;":                          {Codepoints: []rune{8947}, Characters: "\u22F3"},
	"&isinv;":                           {Codepoints: []rune{8712}, Characters: "\u2208"},
	"&it;":                              {Codepoints: []rune{8290}, Characters: "\u2062"},
	"&Itilde;":                          {Codepoints: []rune{296}, Characters: "\u0128"},
	"&itilde;":                          {Codepoints: []rune{297}, Characters: "\u0129"},
	"&Iukcy;":                           {Codepoints: []rune{1030}, Characters: "\u0406"},
	"&iukcy;":                           {Codepoints: []rune{1110}, Characters: "\u0456"},
	"&Iuml;":                            {Codepoints: []rune{207}, Characters: "\u00CF"},
	"&Iuml":                             {Codepoints: []rune{207}, Characters: "\u00CF"},
	"&iuml;":                            {Codepoints: []rune{239}, Characters: "\u00EF"},
	"&iuml":                             {Codepoints: []rune{239}, Characters: "\u00EF"},
	"&Jcirc;":                           {Codepoints: []rune{308}, Characters: "\u0134"},
	"&jcirc;":                           {Codepoints: []rune{309}, Characters: "\u0135"},
	"&Jcy;":                             {Codepoints: []rune{1049}, Characters: "\u0419"},
	"&jcy;":                             {Codepoints: []rune{1081}, Characters: "\u0439"},
	"&Jfr;":                             {Codepoints: []rune{120077}, Characters: "\U0001D50D"},
	"&jfr;":                             {Codepoints: []rune{120103}, Characters: "\U0001D527"},
	"&jmath;":                           {Codepoints: []rune{567}, Characters: "\u0237"},
	"&Jopf;":                            {Codepoints: []rune{120129}, Characters: "\U0001D541"},
	"&jopf;":                            {Codepoints: []rune{120155}, Characters: "\U0001D55B"},
	"&Jscr;":                            {Codepoints: []rune{119973}, Characters: "\U0001D4A5"},
	"&jscr;":                            {Codepoints: []rune{119999}, Characters: "\U0001D4BF"},
	"&Jsercy;":                          {Codepoints: []rune{1032}, Characters: "\u0408"},
	"&jsercy;":                          {Codepoints: []rune{1112}, Characters: "\u0458"},
	"&Jukcy;":                           {Codepoints: []rune{1028}, Characters: "\u0404"},
	"&jukcy;":                           {Codepoints: []rune{1108}, Characters: "\u0454"},
	"&Kappa;":                           {Codepoints: []rune{922}, Characters: "\u039A"},
	"&kappa;":                           {Codepoints: []rune{954}, Characters: "\u03BA"},
	"&kappav;":                          {Codepoints: []rune{1008}, Characters: "\u03F0"},
	"&Kcedil;":                          {Codepoints: []rune{310}, Characters: "\u0136"},
	"&kcedil;":                          {Codepoints: []rune{311}, Characters: "\u0137"},
	"&Kcy;":                             {Codepoints: []rune{1050}, Characters: "\u041A"},
	"&kcy;":                             {Codepoints: []rune{1082}, Characters: "\u043A"},
	"&Kfr;":                             {Codepoints: []rune{120078}, Characters: "\U0001D50E"},
	"&kfr;":                             {Codepoints: []rune{120104}, Characters: "\U0001D528"},
	"&kgreen;":                          {Codepoints: []rune{312}, Characters: "\u0138"},
	"&KHcy;":                            {Codepoints: []rune{1061}, Characters: "\u0425"},
	"&khcy;":                            {Codepoints: []rune{1093}, Characters: "\u0445"},
	"&KJcy;":                            {Codepoints: []rune{1036}, Characters: "\u040C"},
	"&kjcy;":                            {Codepoints: []rune{1116}, Characters: "\u045C"},
	"&Kopf;":                            {Codepoints: []rune{120130}, Characters: "\U0001D542"},
	"&kopf;":                            {Codepoints: []rune{120156}, Characters: "\U0001D55C"},
	"&Kscr;":                            {Codepoints: []rune{119974}, Characters: "\U0001D4A6"},
	"&kscr;":                            {Codepoints: []rune{120000}, Characters: "\U0001D4C0"},
	"&lAarr;":                           {Codepoints: []rune{8666}, Characters: "\u21DA"},
	"&Lacute;":                          {Codepoints: []rune{313}, Characters: "\u0139"},
	"&lacute;":                          {Codepoints: []rune{314}, Characters: "\u013A"},
	"&laemptyv;":                        {Codepoints: []rune{10676}, Characters: "\u29B4"},
	"&lagran;":                          {Codepoints: []rune{8466}, Characters: "\u2112"},
	"&Lambda;":                          {Codepoints: []rune{923}, Characters: "\u039B"},
	"&lambda;":                          {Codepoints: []rune{955}, Characters: "\u03BB"},
	"&lang;":                            {Codepoints: []rune{10216}, Characters: "\u27E8"},
	"&Lang;":                            {Codepoints: []rune{10218}, Characters: "\u27EA"},
	"&langd;":                           {Codepoints: []rune{10641}, Characters: "\u2991"},
	"&langle;":                          {Codepoints: []rune{10216}, Characters: "\u27E8"},
	"&lap;":                             {Codepoints: []rune{10885}, Characters: "\u2A85"},
	"&Laplacetrf;":                      {Codepoints: []rune{8466}, Characters: "\u2112"},
	"&laquo;":                           {Codepoints: []rune{171}, Characters: "\u00AB"},
	"&laquo":                            {Codepoints: []rune{171}, Characters: "\u00AB"},
	"&larrb;":                           {Codepoints: []rune{8676}, Characters: "\u21E4"},
	"&larrbfs;":                         {Codepoints: []rune{10527}, Characters: "\u291F"},
	"&larr;":                            {Codepoints: []rune{8592}, Characters: "\u2190"},
	"&Larr;":                            {Codepoints: []rune{8606}, Characters: "\u219E"},
	"&lArr;":                            {Codepoints: []rune{8656}, Characters: "\u21D0"},
	"&larrfs;":                          {Codepoints: []rune{10525}, Characters: "\u291D"},
	"&larrhk;":                          {Codepoints: []rune{8617}, Characters: "\u21A9"},
	"&larrlp;":                          {Codepoints: []rune{8619}, Characters: "\u21AB"},
	"&larrpl;":                          {Codepoints: []rune{10553}, Characters: "\u2939"},
	"&larrsim;":                         {Codepoints: []rune{10611}, Characters: "\u2973"},
	"&larrtl;":                          {Codepoints: []rune{8610}, Characters: "\u21A2"},
	"&latail;":                          {Codepoints: []rune{10521}, Characters: "\u2919"},
	"&lAtail;":                          {Codepoints: []rune{10523}, Characters: "\u291B"},
	"&lat;":                             {Codepoints: []rune{10923}, Characters: "\u2AAB"},
	"&late;":                            {Codepoints: []rune{10925}, Characters: "\u2AAD"},
	"&lates;":                           {Codepoints: []rune{10925, 65024}, Characters: "\u2AAD\uFE00"},
	"&lbarr;":                           {Codepoints: []rune{10508}, Characters: "\u290C"},
	"&lBarr;":                           {Codepoints: []rune{10510}, Characters: "\u290E"},
	"&lbbrk;":                           {Codepoints: []rune{10098}, Characters: "\u2772"},
	"&lbrace;":                          {Codepoints: []rune{123}, Characters: "{"},
	"&lbrack;":                          {Codepoints: []rune{91}, Characters: "["},
	"&lbrke;":                           {Codepoints: []rune{10635}, Characters: "\u298B"},
	"&lbrksld;":                         {Codepoints: []rune{10639}, Characters: "\u298F"},
	"&lbrkslu;":                         {Codepoints: []rune{10637}, Characters: "\u298D"},
	"&Lcaron;":                          {Codepoints: []rune{317}, Characters: "\u013D"},
	"&lcaron;":                          {Codepoints: []rune{318}, Characters: "\u013E"},
	"&Lcedil;":                          {Codepoints: []rune{315}, Characters: "\u013B"},
	"&lcedil;":                          {Codepoints: []rune{316}, Characters: "\u013C"},
	"&lceil;":                           {Codepoints: []rune{8968}, Characters: "\u2308"},
	"&lcub;":                            {Codepoints: []rune{123}, Characters: "{"},
	"&Lcy;":                             {Codepoints: []rune{1051}, Characters: "\u041B"},
	"&lcy;":                             {Codepoints: []rune{1083}, Characters: "\u043B"},
	"&ldca;":                            {Codepoints: []rune{10550}, Characters: "\u2936"},
	"&ldquo;":                           {Codepoints: []rune{8220}, Characters: "\u201C"},
	"&ldquor;":                          {Codepoints: []rune{8222}, Characters: "\u201E"},
	"&ldrdhar;":                         {Codepoints: []rune{10599}, Characters: "\u2967"},
	"&ldrushar;":                        {Codepoints: []rune{10571}, Characters: "\u294B"},
	"&ldsh;":                            {Codepoints: []rune{8626}, Characters: "\u21B2"},
	"&le;":                              {Codepoints: []rune{8804}, Characters: "\u2264"},
	"&lE;":                              {Codepoints: []rune{8806}, Characters: "\u2266"},
	"&LeftAngleBracket;":                {Codepoints: []rune{10216}, Characters: "\u27E8"},
	"&LeftArrowBar;":                    {Codepoints: []rune{8676}, Characters: "\u21E4"},
	"&leftarrow;":                       {Codepoints: []rune{8592}, Characters: "\u2190"},
	"&LeftArrow;":                       {Codepoints: []rune{8592}, Characters: "\u2190"},
	"&Leftarrow;":                       {Codepoints: []rune{8656}, Characters: "\u21D0"},
	"&LeftArrowRightArrow;":             {Codepoints: []rune{8646}, Characters: "\u21C6"},
	"&leftarrowtail;":                   {Codepoints: []rune{8610}, Characters: "\u21A2"},
	"&LeftCeiling;":                     {Codepoints: []rune{8968}, Characters: "\u2308"},
	"&LeftDoubleBracket;":               {Codepoints: []rune{10214}, Characters: "\u27E6"},
	"&LeftDownTeeVector;":               {Codepoints: []rune{10593}, Characters: "\u2961"},
	"&LeftDownVectorBar;":               {Codepoints: []rune{10585}, Characters: "\u2959"},
	"&LeftDownVector;":                  {Codepoints: []rune{8643}, Characters: "\u21C3"},
	"&LeftFloor;":                       {Codepoints: []rune{8970}, Characters: "\u230A"},
	"&leftharpoondown;":                 {Codepoints: []rune{8637}, Characters: "\u21BD"},
	"&leftharpoonup;":                   {Codepoints: []rune{8636}, Characters: "\u21BC"},
	"&leftleftarrows;":                  {Codepoints: []rune{8647}, Characters: "\u21C7"},
	"&leftrightarrow;":                  {Codepoints: []rune{8596}, Characters: "\u2194"},
	"&LeftRightArrow;":                  {Codepoints: []rune{8596}, Characters: "\u2194"},
	"&Leftrightarrow;":                  {Codepoints: []rune{8660}, Characters: "\u21D4"},
	"&leftrightarrows;":                 {Codepoints: []rune{8646}, Characters: "\u21C6"},
	"&leftrightharpoons;":               {Codepoints: []rune{8651}, Characters: "\u21CB"},
	"&leftrightsquigarrow;":             {Codepoints: []rune{8621}, Characters: "\u21AD"},
	"&LeftRightVector;":                 {Codepoints: []rune{10574}, Characters: "\u294E"},
	"&LeftTeeArrow;":                    {Codepoints: []rune{8612}, Characters: "\u21A4"},
	"&LeftTee;":                         {Codepoints: []rune{8867}, Characters: "\u22A3"},
	"&LeftTeeVector;":                   {Codepoints: []rune{10586}, Characters: "\u295A"},
	"&leftthreetimes;":                  {Codepoints: []rune{8907}, Characters: "\u22CB"},
	"&LeftTriangleBar;":                 {Codepoints: []rune{10703}, Characters: "\u29CF"},
	"&LeftTriangle;":                    {Codepoints: []rune{8882}, Characters: "\u22B2"},
	"&LeftTriangleEqual;":               {Codepoints: []rune{8884}, Characters: "\u22B4"},
	"&LeftUpDownVector;":                {Codepoints: []rune{10577}, Characters: "\u2951"},
	"&LeftUpTeeVector;":                 {Codepoints: []rune{10592}, Characters: "\u2960"},
	"&LeftUpVectorBar;":                 {Codepoints: []rune{10584}, Characters: "\u2958"},
	"&LeftUpVector;":                    {Codepoints: []rune{8639}, Characters: "\u21BF"},
	"&LeftVectorBar;":                   {Codepoints: []rune{10578}, Characters: "\u2952"},
	"&LeftVector;":                      {Codepoints: []rune{8636}, Characters: "\u21BC"},
	"&lEg;":                             {Codepoints: []rune{10891}, Characters: "\u2A8B"},
	"&leg;":                             {Codepoints: []rune{8922}, Characters: "\u22DA"},
	"&leq;":                             {Codepoints: []rune{8804}, Characters: "\u2264"},
	"&leqq;":                            {Codepoints: []rune{8806}, Characters: "\u2266"},
	"&leqslant;":                        {Codepoints: []rune{10877}, Characters: "\u2A7D"},
	"&lescc;":                           {Codepoints: []rune{10920}, Characters: "\u2AA8"},
	"&les;":                             {Codepoints: []rune{10877}, Characters: "\u2A7D"},
	"&lesdot;":                          {Codepoints: []rune{10879}, Characters: "\u2A7F"},
	"&lesdoto;":                         {Codepoints: []rune{10881}, Characters: "\u2A81"},
	"&lesdotor;":                        {Codepoints: []rune{10883}, Characters: "\u2A83"},
	"&lesg;":                            {Codepoints: []rune{8922, 65024}, Characters: "\u22DA\uFE00"},
	"&lesges;":                          {Codepoints: []rune{10899}, Characters: "\u2A93"},
	"&lessapprox;":                      {Codepoints: []rune{10885}, Characters: "\u2A85"},
	"&lessdot;":                         {Codepoints: []rune{8918}, Characters: "\u22D6"},
	"&lesseqgtr;":                       {Codepoints: []rune{8922}, Characters: "\u22DA"},
	"&lesseqqgtr;":                      {Codepoints: []rune{10891}, Characters: "\u2A8B"},
	"&LessEqualGreater;":                {Codepoints: []rune{8922}, Characters: "\u22DA"},
	"&LessFullEqual;":                   {Codepoints: []rune{8806}, Characters: "\u2266"},
	"&LessGreater;":                     {Codepoints: []rune{8822}, Characters: "\u2276"},
	"&lessgtr;":                         {Codepoints: []rune{8822}, Characters: "\u2276"},
	"&LessLess;":                        {Codepoints: []rune{10913}, Characters: "\u2AA1"},
	"&lesssim;":                         {Codepoints: []rune{8818}, Characters: "\u2272"},
	"&LessSlantEqual;":                  {Codepoints: []rune{10877}, Characters: "\u2A7D"},
	"&LessTilde;":                       {Codepoints: []rune{8818}, Characters: "\u2272"},
	"&lfisht;":                          {Codepoints: []rune{10620}, Characters: "\u297C"},
	"&lfloor;":                          {Codepoints: []rune{8970}, Characters: "\u230A"},
	"&Lfr;":                             {Codepoints: []rune{120079}, Characters: "\U0001D50F"},
	"&lfr;":                             {Codepoints: []rune{120105}, Characters: "\U0001D529"},
	"&lg;":                              {Codepoints: []rune{8822}, Characters: "\u2276"},
	"&lgE;":                             {Codepoints: []rune{10897}, Characters: "\u2A91"},
	"&lHar;":                            {Codepoints: []rune{10594}, Characters: "\u2962"},
	"&lhard;":                           {Codepoints: []rune{8637}, Characters: "\u21BD"},
	"&lharu;":                           {Codepoints: []rune{8636}, Characters: "\u21BC"},
	"&lharul;":                          {Codepoints: []rune{10602}, Characters: "\u296A"},
	"&lhblk;":                           {Codepoints: []rune{9604}, Characters: "\u2584"},
	"&LJcy;":                            {Codepoints: []rune{1033}, Characters: "\u0409"},
	"&ljcy;":                            {Codepoints: []rune{1113}, Characters: "\u0459"},
	"&llarr;":                           {Codepoints: []rune{8647}, Characters: "\u21C7"},
	"&ll;":                              {Codepoints: []rune{8810}, Characters: "\u226A"},
	"&Ll;":                              {Codepoints: []rune{8920}, Characters: "\u22D8"},
	"&llcorner;":                        {Codepoints: []rune{8990}, Characters: "\u231E"},
	"&Lleftarrow;":                      {Codepoints: []rune{8666}, Characters: "\u21DA"},
	"&llhard;":                          {Codepoints: []rune{10603}, Characters: "\u296B"},
	"&lltri;":                           {Codepoints: []rune{9722}, Characters: "\u25FA"},
	"&Lmidot;":                          {Codepoints: []rune{319}, Characters: "\u013F"},
	"&lmidot;":                          {Codepoints: []rune{320}, Characters: "\u0140"},
	"&lmoustache;":                      {Codepoints: []rune{9136}, Characters: "\u23B0"},
	"&lmoust;":                          {Codepoints: []rune{9136}, Characters: "\u23B0"},
	"&lnap;":                            {Codepoints: []rune{10889}, Characters: "\u2A89"},
	"&lnapprox;":                        {Codepoints: []rune{10889}, Characters: "\u2A89"},
	"&lne;":                             {Codepoints: []rune{10887}, Characters: "\u2A87"},
	"&lnE;":                             {Codepoints: []rune{8808}, Characters: "\u2268"},
	"&lneq;":                            {Codepoints: []rune{10887}, Characters: "\u2A87"},
	"&lneqq;":                           {Codepoints: []rune{8808}, Characters: "\u2268"},
	"&lnsim;":                           {Codepoints: []rune{8934}, Characters: "\u22E6"},
	"&loang;":                           {Codepoints: []rune{10220}, Characters: "\u27EC"},
	"&loarr;":                           {Codepoints: []rune{8701}, Characters: "\u21FD"},
	"&lobrk;":                           {Codepoints: []rune{10214}, Characters: "\u27E6"},
	"&longleftarrow;":                   {Codepoints: []rune{10229}, Characters: "\u27F5"},
	"&LongLeftArrow;":                   {Codepoints: []rune{10229}, Characters: "\u27F5"},
	"&Longleftarrow;":                   {Codepoints: []rune{10232}, Characters: "\u27F8"},
	"&longleftrightarrow;":              {Codepoints: []rune{10231}, Characters: "\u27F7"},
	"&LongLeftRightArrow;":              {Codepoints: []rune{10231}, Characters: "\u27F7"},
	"&Longleftrightarrow;":              {Codepoints: []rune{10234}, Characters: "\u27FA"},
	"&longmapsto;":                      {Codepoints: []rune{10236}, Characters: "\u27FC"},
	"&longrightarrow;":                  {Codepoints: []rune{10230}, Characters: "\u27F6"},
	"&LongRightArrow;":                  {Codepoints: []rune{10230}, Characters: "\u27F6"},
	"&Longrightarrow;":                  {Codepoints: []rune{10233}, Characters: "\u27F9"},
	"&looparrowleft;":                   {Codepoints: []rune{8619}, Characters: "\u21AB"},
	"&looparrowright;":                  {Codepoints: []rune{8620}, Characters: "\u21AC"},
	"&lopar;":                           {Codepoints: []rune{10629}, Characters: "\u2985"},
	"&Lopf;":                            {Codepoints: []rune{120131}, Characters: "\U0001D543"},
	"&lopf;":                            {Codepoints: []rune{120157}, Characters: "\U0001D55D"},
	"&loplus;":                          {Codepoints: []rune{10797}, Characters: "\u2A2D"},
	"&lotimes;":                         {Codepoints: []rune{10804}, Characters: "\u2A34"},
	"&lowast;":                          {Codepoints: []rune{8727}, Characters: "\u2217"},
	"&lowbar;":                          {Codepoints: []rune{95}, Characters: "_"},
	"&LowerLeftArrow;":                  {Codepoints: []rune{8601}, Characters: "\u2199"},
	"&LowerRightArrow;":                 {Codepoints: []rune{8600}, Characters: "\u2198"},
	"&loz;":                             {Codepoints: []rune{9674}, Characters: "\u25CA"},
	"&lozenge;":                         {Codepoints: []rune{9674}, Characters: "\u25CA"},
	"&lozf;":                            {Codepoints: []rune{10731}, Characters: "\u29EB"},
	"&lpar;":                            {Codepoints: []rune{40}, Characters: "("},
	"&lparlt;":                          {Codepoints: []rune{10643}, Characters: "\u2993"},
	"&lrarr;":                           {Codepoints: []rune{8646}, Characters: "\u21C6"},
	"&lrcorner;":                        {Codepoints: []rune{8991}, Characters: "\u231F"},
	"&lrhar;":                           {Codepoints: []rune{8651}, Characters: "\u21CB"},
	"&lrhard;":                          {Codepoints: []rune{10605}, Characters: "\u296D"},
	"&lrm;":                             {Codepoints: []rune{8206}, Characters: "\u200E"},
	"&lrtri;":                           {Codepoints: []rune{8895}, Characters: "\u22BF"},
	"&lsaquo;":                          {Codepoints: []rune{8249}, Characters: "\u2039"},
	"&lscr;":                            {Codepoints: []rune{120001}, Characters: "\U0001D4C1"},
	"&Lscr;":                            {Codepoints: []rune{8466}, Characters: "\u2112"},
	"&lsh;":                             {Codepoints: []rune{8624}, Characters: "\u21B0"},
	"&Lsh;":                             {Codepoints: []rune{8624}, Characters: "\u21B0"},
	"&lsim;":                            {Codepoints: []rune{8818}, Characters: "\u2272"},
	"&lsime;":                           {Codepoints: []rune{10893}, Characters: "\u2A8D"},
	"&lsimg;":                           {Codepoints: []rune{10895}, Characters: "\u2A8F"},
	"&lsqb;":                            {Codepoints: []rune{91}, Characters: "["},
	"&lsquo;":                           {Codepoints: []rune{8216}, Characters: "\u2018"},
	"&lsquor;":                          {Codepoints: []rune{8218}, Characters: "\u201A"},
	"&Lstrok;":                          {Codepoints: []rune{321}, Characters: "\u0141"},
	"&lstrok;":                          {Codepoints: []rune{322}, Characters: "\u0142"},
	"&ltcc;":                            {Codepoints: []rune{10918}, Characters: "\u2AA6"},
	"&ltcir;":                           {Codepoints: []rune{10873}, Characters: "\u2A79"},
	"&lt;":                              {Codepoints: []rune{60}, Characters: "<"},
	"&lt":                               {Codepoints: []rune{60}, Characters: "<"},
	"&LT;":                              {Codepoints: []rune{60}, Characters: "<"},
	"&LT":                               {Codepoints: []rune{60}, Characters: "<"},
	"&Lt;":                              {Codepoints: []rune{8810}, Characters: "\u226A"},
	"&ltdot;":                           {Codepoints: []rune{8918}, Characters: "\u22D6"},
	"&lthree;":                          {Codepoints: []rune{8907}, Characters: "\u22CB"},
	"&ltimes;":                          {Codepoints: []rune{8905}, Characters: "\u22C9"},
	"&ltlarr;":                          {Codepoints: []rune{10614}, Characters: "\u2976"},
	"&ltquest;":                         {Codepoints: []rune{10875}, Characters: "\u2A7B"},
	"&ltri;":                            {Codepoints: []rune{9667}, Characters: "\u25C3"},
	"&ltrie;":                           {Codepoints: []rune{8884}, Characters: "\u22B4"},
	"&ltrif;":                           {Codepoints: []rune{9666}, Characters: "\u25C2"},
	"&ltrPar;":                          {Codepoints: []rune{10646}, Characters: "\u2996"},
	"&lurdshar;":                        {Codepoints: []rune{10570}, Characters: "\u294A"},
	"&luruhar;":                         {Codepoints: []rune{10598}, Characters: "\u2966"},
	"&lvertneqq;":                       {Codepoints: []rune{8808, 65024}, Characters: "\u2268\uFE00"},
	"&lvnE;":                            {Codepoints: []rune{8808, 65024}, Characters: "\u2268\uFE00"},
	"&macr;":                            {Codepoints: []rune{175}, Characters: "\u00AF"},
	"&macr":                             {Codepoints: []rune{175}, Characters: "\u00AF"},
	"&male;":                            {Codepoints: []rune{9794}, Characters: "\u2642"},
	"&malt;":                            {Codepoints: []rune{10016}, Characters: "\u2720"},
	"&maltese;":                         {Codepoints: []rune{10016}, Characters: "\u2720"},
	"&Map;":                             {Codepoints: []rune{10501}, Characters: "\u2905"},
	"&map;":                             {Codepoints: []rune{8614}, Characters: "\u21A6"},
	"&mapsto;":                          {Codepoints: []rune{8614}, Characters: "\u21A6"},
	"&mapstodown;":                      {Codepoints: []rune{8615}, Characters: "\u21A7"},
	"&mapstoleft;":                      {Codepoints: []rune{8612}, Characters: "\u21A4"},
	"&mapstoup;":                        {Codepoints: []rune{8613}, Characters: "\u21A5"},
	"&marker;":                          {Codepoints: []rune{9646}, Characters: "\u25AE"},
	"&mcomma;":                          {Codepoints: []rune{10793}, Characters: "\u2A29"},
	"&Mcy;":                             {Codepoints: []rune{1052}, Characters: "\u041C"},
	"&mcy;":                             {Codepoints: []rune{1084}, Characters: "\u043C"},
	"&mdash;":                           {Codepoints: []rune{8212}, Characters: "\u2014"},
	"&mDDot;":                           {Codepoints: []rune{8762}, Characters: "\u223A"},
	"&measuredangle;":                   {Codepoints: []rune{8737}, Characters: "\u2221"},
	"&MediumSpace;":                     {Codepoints: []rune{8287}, Characters: "\u205F"},
	"&Mellintrf;":                       {Codepoints: []rune{8499}, Characters: "\u2133"},
	"&Mfr;":                             {Codepoints: []rune{120080}, Characters: "\U0001D510"},
	"&mfr;":                             {Codepoints: []rune{120106}, Characters: "\U0001D52A"},
	"&mho;":                             {Codepoints: []rune{8487}, Characters: "\u2127"},
	"&micro;":                           {Codepoints: []rune{181}, Characters: "\u00B5"},
	"&micro":                            {Codepoints: []rune{181}, Characters: "\u00B5"},
	"&midast;":                          {Codepoints: []rune{42}, Characters: "*"},
	"&midcir;":                          {Codepoints: []rune{10992}, Characters: "\u2AF0"},
	"&mid;":                             {Codepoints: []rune{8739}, Characters: "\u2223"},
	"&middot;":                          {Codepoints: []rune{183}, Characters: "\u00B7"},
	"&middot":                           {Codepoints: []rune{183}, Characters: "\u00B7"},
	"&minusb;":                          {Codepoints: []rune{8863}, Characters: "\u229F"},
	"&minus;":                           {Codepoints: []rune{8722}, Characters: "\u2212"},
	"&minusd;":                          {Codepoints: []rune{8760}, Characters: "\u2238"},
	"&minusdu;":                         {Codepoints: []rune{10794}, Characters: "\u2A2A"},
	"&MinusPlus;":                       {Codepoints: []rune{8723}, Characters: "\u2213"},
	"&mlcp;":                            {Codepoints: []rune{10971}, Characters: "\u2ADB"},
	"&mldr;":                            {Codepoints: []rune{8230}, Characters: "\u2026"},
	"&mnplus;":                          {Codepoints: []rune{8723}, Characters: "\u2213"},
	"&models;":                          {Codepoints: []rune{8871}, Characters: "\u22A7"},
	"&Mopf;":                            {Codepoints: []rune{120132}, Characters: "\U0001D544"},
	"&mopf;":                            {Codepoints: []rune{120158}, Characters: "\U0001D55E"},
	"&mp;":                              {Codepoints: []rune{8723}, Characters: "\u2213"},
	"&mscr;":                            {Codepoints: []rune{120002}, Characters: "\U0001D4C2"},
	"&Mscr;":                            {Codepoints: []rune{8499}, Characters: "\u2133"},
	"&mstpos;":                          {Codepoints: []rune{8766}, Characters: "\u223E"},
	"&Mu;":                              {Codepoints: []rune{924}, Characters: "\u039C"},
	"&mu;":                              {Codepoints: []rune{956}, Characters: "\u03BC"},
	"&multimap;":                        {Codepoints: []rune{8888}, Characters: "\u22B8"},
	"&mumap;":                           {Codepoints: []rune{8888}, Characters: "\u22B8"},
	"&nabla;":                           {Codepoints: []rune{8711}, Characters: "\u2207"},
	"&Nacute;":                          {Codepoints: []rune{323}, Characters: "\u0143"},
	"&nacute;":                          {Codepoints: []rune{324}, Characters: "\u0144"},
	"&nang;":                            {Codepoints: []rune{8736, 8402}, Characters: "\u2220\u20D2"},
	"&nap;":                             {Codepoints: []rune{8777}, Characters: "\u2249"},
	"&napE;":                            {Codepoints: []rune{10864, 824}, Characters: "\u2A70\u0338"},
	"&napid;":                           {Codepoints: []rune{8779, 824}, Characters: "\u224B\u0338"},
	"&napos;":                           {Codepoints: []rune{329}, Characters: "\u0149"},
	"&napprox;":                         {Codepoints: []rune{8777}, Characters: "\u2249"},
	"&natural;":                         {Codepoints: []rune{9838}, Characters: "\u266E"},
	"&naturals;":                        {Codepoints: []rune{8469}, Characters: "\u2115"},
	"&natur;":                           {Codepoints: []rune{9838}, Characters: "\u266E"},
	"&nbsp;":                            {Codepoints: []rune{160}, Characters: "\u00A0"},
	"&nbsp":                             {Codepoints: []rune{160}, Characters: "\u00A0"},
	"&nbump;":                           {Codepoints: []rune{8782, 824}, Characters: "\u224E\u0338"},
	"&nbumpe;":                          {Codepoints: []rune{8783, 824}, Characters: "\u224F\u0338"},
	"&ncap;":                            {Codepoints: []rune{10819}, Characters: "\u2A43"},
	"&Ncaron;":                          {Codepoints: []rune{327}, Characters: "\u0147"},
	"&ncaron;":                          {Codepoints: []rune{328}, Characters: "\u0148"},
	"&Ncedil;":                          {Codepoints: []rune{325}, Characters: "\u0145"},
	"&ncedil;":                          {Codepoints: []rune{326}, Characters: "\u0146"},
	"&ncong;":                           {Codepoints: []rune{8775}, Characters: "\u2247"},
	"&ncongdot;":                        {Codepoints: []rune{10861, 824}, Characters: "\u2A6D\u0338"},
	"&ncup;":                            {Codepoints: []rune{10818}, Characters: "\u2A42"},
	"&Ncy;":                             {Codepoints: []rune{1053}, Characters: "\u041D"},
	"&ncy;":                             {Codepoints: []rune{1085}, Characters: "\u043D"},
	"&ndash;":                           {Codepoints: []rune{8211}, Characters: "\u2013"},
	"&nearhk;":                          {Codepoints: []rune{10532}, Characters: "\u2924"},
	"&nearr;":                           {Codepoints: []rune{8599}, Characters: "\u2197"},
	"&neArr;":                           {Codepoints: []rune{8663}, Characters: "\u21D7"},
	"&nearrow;":                         {Codepoints: []rune{8599}, Characters: "\u2197"},
	"&ne;":                              {Codepoints: []rune{8800}, Characters: "\u2260"},
	"&nedot;":                           {Codepoints: []rune{8784, 824}, Characters: "\u2250\u0338"},
	"&NegativeMediumSpace;":             {Codepoints: []rune{8203}, Characters: "\u200B"},
	"&NegativeThickSpace;":              {Codepoints: []rune{8203}, Characters: "\u200B"},
	"&NegativeThinSpace;":               {Codepoints: []rune{8203}, Characters: "\u200B"},
	"&NegativeVeryThinSpace;":           {Codepoints: []rune{8203}, Characters: "\u200B"},
	"&nequiv;":                          {Codepoints: []rune{8802}, Characters: "\u2262"},
	"&nesear;":                          {Codepoints: []rune{10536}, Characters: "\u2928"},
	"&nesim;":                           {Codepoints: []rune{8770, 824}, Characters: "\u2242\u0338"},
	"&NestedGreaterGreater;":            {Codepoints: []rune{8811}, Characters: "\u226B"},
	"&NestedLessLess;":                  {Codepoints: []rune{8810}, Characters: "\u226A"},
	"&NewLine;":                         {Codepoints: []rune{10}, Characters: "\u000A"},
	"&nexist;":                          {Codepoints: []rune{8708}, Characters: "\u2204"},
	"&nexists;":                         {Codepoints: []rune{8708}, Characters: "\u2204"},
	"&Nfr;":                             {Codepoints: []rune{120081}, Characters: "\U0001D511"},
	"&nfr;":                             {Codepoints: []rune{120107}, Characters: "\U0001D52B"},
	"&ngE;":                             {Codepoints: []rune{8807, 824}, Characters: "\u2267\u0338"},
	"&nge;":                             {Codepoints: []rune{8817}, Characters: "\u2271"},
	"&ngeq;":                            {Codepoints: []rune{8817}, Characters: "\u2271"},
	"&ngeqq;":                           {Codepoints: []rune{8807, 824}, Characters: "\u2267\u0338"},
	"&ngeqslant;":                       {Codepoints: []rune{10878, 824}, Characters: "\u2A7E\u0338"},
	"&nges;":                            {Codepoints: []rune{10878, 824}, Characters: "\u2A7E\u0338"},
	"&nGg;":                             {Codepoints: []rune{8921, 824}, Characters: "\u22D9\u0338"},
	"&ngsim;":                           {Codepoints: []rune{8821}, Characters: "\u2275"},
	"&nGt;":                             {Codepoints: []rune{8811, 8402}, Characters: "\u226B\u20D2"},
	"&ngt;":                             {Codepoints: []rune{8815}, Characters: "\u226F"},
	"&ngtr;":                            {Codepoints: []rune{8815}, Characters: "\u226F"},
	"&nGtv;":                            {Codepoints: []rune{8811, 824}, Characters: "\u226B\u0338"},
	"&nharr;":                           {Codepoints: []rune{8622}, Characters: "\u21AE"},
	"&nhArr;":                           {Codepoints: []rune{8654}, Characters: "\u21CE"},
	"&nhpar;":                           {Codepoints: []rune{10994}, Characters: "\u2AF2"},
	"&ni;":                              {Codepoints: []rune{8715}, Characters: "\u220B"},
	"&nis;":                             {Codepoints: []rune{8956}, Characters: "\u22FC"},
	"&nisd;":                            {Codepoints: []rune{8954}, Characters: "\u22FA"},
	"&niv;":                             {Codepoints: []rune{8715}, Characters: "\u220B"},
	"&NJcy;":                            {Codepoints: []rune{1034}, Characters: "\u040A"},
	"&njcy;":                            {Codepoints: []rune{1114}, Characters: "\u045A"},
	"&nlarr;":                           {Codepoints: []rune{8602}, Characters: "\u219A"},
	"&nlArr;":                           {Codepoints: []rune{8653}, Characters: "\u21CD"},
	"&nldr;":                            {Codepoints: []rune{8229}, Characters: "\u2025"},
	"&nlE;":                             {Codepoints: []rune{8806, 824}, Characters: "\u2266\u0338"},
	"&nle;":                             {Codepoints: []rune{8816}, Characters: "\u2270"},
	"&nleftarrow;":                      {Codepoints: []rune{8602}, Characters: "\u219A"},
	"&nLeftarrow;":                      {Codepoints: []rune{8653}, Characters: "\u21CD"},
	"&nleftrightarrow;":                 {Codepoints: []rune{8622}, Characters: "\u21AE"},
	"&nLeftrightarrow;":                 {Codepoints: []rune{8654}, Characters: "\u21CE"},
	"&nleq;":                            {Codepoints: []rune{8816}, Characters: "\u2270"},
	"&nleqq;":                           {Codepoints: []rune{8806, 824}, Characters: "\u2266\u0338"},
	"&nleqslant;":                       {Codepoints: []rune{10877, 824}, Characters: "\u2A7D\u0338"},
	"&nles;":                            {Codepoints: []rune{10877, 824}, Characters: "\u2A7D\u0338"},
	"&nless;":                           {Codepoints: []rune{8814}, Characters: "\u226E"},
	"&nLl;":                             {Codepoints: []rune{8920, 824}, Characters: "\u22D8\u0338"},
	"&nlsim;":                           {Codepoints: []rune{8820}, Characters: "\u2274"},
	"&nLt;":                             {Codepoints: []rune{8810, 8402}, Characters: "\u226A\u20D2"},
	"&nlt;":                             {Codepoints: []rune{8814}, Characters: "\u226E"},
	"&nltri;":                           {Codepoints: []rune{8938}, Characters: "\u22EA"},
	"&nltrie;":                          {Codepoints: []rune{8940}, Characters: "\u22EC"},
	"&nLtv;":                            {Codepoints: []rune{8810, 824}, Characters: "\u226A\u0338"},
	"&nmid;":                            {Codepoints: []rune{8740}, Characters: "\u2224"},
	"&NoBreak;":                         {Codepoints: []rune{8288}, Characters: "\u2060"},
	"&NonBreakingSpace;":                {Codepoints: []rune{160}, Characters: "\u00A0"},
	"&nopf;":                            {Codepoints: []rune{120159}, Characters: "\U0001D55F"},
	"&Nopf;":                            {Codepoints: []rune{8469}, Characters: "\u2115"},
	"&Not;":                             {Codepoints: []rune{10988}, Characters: "\u2AEC"},
	"&not;":                             {Codepoints: []rune{172}, Characters: "\u00AC"},
	"&not":                              {Codepoints: []rune{172}, Characters: "\u00AC"},
	"&NotCongruent;":                    {Codepoints: []rune{8802}, Characters: "\u2262"},
	"&NotCupCap;":                       {Codepoints: []rune{8813}, Characters: "\u226D"},
	"&NotDoubleVerticalBar;":            {Codepoints: []rune{8742}, Characters: "\u2226"},
	"&NotElement;":                      {Codepoints: []rune{8713}, Characters: "\u2209"},
	"&NotEqual;":                        {Codepoints: []rune{8800}, Characters: "\u2260"},
	"&NotEqualTilde;":                   {Codepoints: []rune{8770, 824}, Characters: "\u2242\u0338"},
	"&NotExists;":                       {Codepoints: []rune{8708}, Characters: "\u2204"},
	"&NotGreater;":                      {Codepoints: []rune{8815}, Characters: "\u226F"},
	"&NotGreaterEqual;":                 {Codepoints: []rune{8817}, Characters: "\u2271"},
	"&NotGreaterFullEqual;":             {Codepoints: []rune{8807, 824}, Characters: "\u2267\u0338"},
	"&NotGreaterGreater;":               {Codepoints: []rune{8811, 824}, Characters: "\u226B\u0338"},
	"&NotGreaterLess;":                  {Codepoints: []rune{8825}, Characters: "\u2279"},
	"&NotGreaterSlantEqual;":            {Codepoints: []rune{10878, 824}, Characters: "\u2A7E\u0338"},
	"&NotGreaterTilde;":                 {Codepoints: []rune{8821}, Characters: "\u2275"},
	"&NotHumpDownHump;":                 {Codepoints: []rune{8782, 824}, Characters: "\u224E\u0338"},
	"&NotHumpEqual;":                    {Codepoints: []rune{8783, 824}, Characters: "\u224F\u0338"},
	"&notin;":                           {Codepoints: []rune{8713}, Characters: "\u2209"},
	"&notindot;":                        {Codepoints: []rune{8949, 824}, Characters: "\u22F5\u0338"},
	"&notinE;":                          {Codepoints: []rune{8953, 824}, Characters: "\u22F9\u0338"},
	"&notinva;":                         {Codepoints: []rune{8713}, Characters: "\u2209"},
	"&notinvb;":                         {Codepoints: []rune{8951}, Characters: "\u22F7"},
	"&notinvc;":                         {Codepoints: []rune{8950}, Characters: "\u22F6"},
	"&NotLeftTriangleBar;":              {Codepoints: []rune{10703, 824}, Characters: "\u29CF\u0338"},
	"&NotLeftTriangle;":                 {Codepoints: []rune{8938}, Characters: "\u22EA"},
	"&NotLeftTriangleEqual;":            {Codepoints: []rune{8940}, Characters: "\u22EC"},
	"&NotLess;":                         {Codepoints: []rune{8814}, Characters: "\u226E"},
	"&NotLessEqual;":                    {Codepoints: []rune{8816}, Characters: "\u2270"},
	"&NotLessGreater;":                  {Codepoints: []rune{8824}, Characters: "\u2278"},
	"&NotLessLess;":                     {Codepoints: []rune{8810, 824}, Characters: "\u226A\u0338"},
	"&NotLessSlantEqual;":               {Codepoints: []rune{10877, 824}, Characters: "\u2A7D\u0338"},
	"&NotLessTilde;":                    {Codepoints: []rune{8820}, Characters: "\u2274"},
	"&NotNestedGreaterGreater;":         {Codepoints: []rune{10914, 824}, Characters: "\u2AA2\u0338"},
	"&NotNestedLessLess;":               {Codepoints: []rune{10913, 824}, Characters: "\u2AA1\u0338"},
	"&notni;":                           {Codepoints: []rune{8716}, Characters: "\u220C"},
	"&notniva;":                         {Codepoints: []rune{8716}, Characters: "\u220C"},
	"&notnivb;":                         {Codepoints: []rune{8958}, Characters: "\u22FE"},
	"&notnivc;":                         {Codepoints: []rune{8957}, Characters: "\u22FD"},
	"&NotPrecedes;":                     {Codepoints: []rune{8832}, Characters: "\u2280"},
	"&NotPrecedesEqual;":                {Codepoints: []rune{10927, 824}, Characters: "\u2AAF\u0338"},
	"&NotPrecedesSlantEqual;":           {Codepoints: []rune{8928}, Characters: "\u22E0"},
	"&NotReverseElement;":               {Codepoints: []rune{8716}, Characters: "\u220C"},
	"&NotRightTriangleBar;":             {Codepoints: []rune{10704, 824}, Characters: "\u29D0\u0338"},
	"&NotRightTriangle;":                {Codepoints: []rune{8939}, Characters: "\u22EB"},
	"&NotRightTriangleEqual;":           {Codepoints: []rune{8941}, Characters: "\u22ED"},
	"&NotSquareSubset;":                 {Codepoints: []rune{8847, 824}, Characters: "\u228F\u0338"},
	"&NotSquareSubsetEqual;":            {Codepoints: []rune{8930}, Characters: "\u22E2"},
	"&NotSquareSuperset;":               {Codepoints: []rune{8848, 824}, Characters: "\u2290\u0338"},
	"&NotSquareSupersetEqual;":          {Codepoints: []rune{8931}, Characters: "\u22E3"},
	"&NotSubset;":                       {Codepoints: []rune{8834, 8402}, Characters: "\u2282\u20D2"},
	"&NotSubsetEqual;":                  {Codepoints: []rune{8840}, Characters: "\u2288"},
	"&NotSucceeds;":                     {Codepoints: []rune{8833}, Characters: "\u2281"},
	"&NotSucceedsEqual;":                {Codepoints: []rune{10928, 824}, Characters: "\u2AB0\u0338"},
	"&NotSucceedsSlantEqual;":           {Codepoints: []rune{8929}, Characters: "\u22E1"},
	"&NotSucceedsTilde;":                {Codepoints: []rune{8831, 824}, Characters: "\u227F\u0338"},
	"&NotSuperset;":                     {Codepoints: []rune{8835, 8402}, Characters: "\u2283\u20D2"},
	"&NotSupersetEqual;":                {Codepoints: []rune{8841}, Characters: "\u2289"},
	"&NotTilde;":                        {Codepoints: []rune{8769}, Characters: "\u2241"},
	"&NotTildeEqual;":                   {Codepoints: []rune{8772}, Characters: "\u2244"},
	"&NotTildeFullEqual;":               {Codepoints: []rune{8775}, Characters: "\u2247"},
	"&NotTildeTilde;":                   {Codepoints: []rune{8777}, Characters: "\u2249"},
	"&NotVerticalBar;":                  {Codepoints: []rune{8740}, Characters: "\u2224"},
	"&nparallel;":                       {Codepoints: []rune{8742}, Characters: "\u2226"},
	"&npar;":                            {Codepoints: []rune{8742}, Characters: "\u2226"},
	"&nparsl;":                          {Codepoints: []rune{11005, 8421}, Characters: "\u2AFD\u20E5"},
	"&npart;":                           {Codepoints: []rune{8706, 824}, Characters: "\u2202\u0338"},
	"&npolint;":                         {Codepoints: []rune{10772}, Characters: "\u2A14"},
	"&npr;":                             {Codepoints: []rune{8832}, Characters: "\u2280"},
	"&nprcue;":                          {Codepoints: []rune{8928}, Characters: "\u22E0"},
	"&nprec;":                           {Codepoints: []rune{8832}, Characters: "\u2280"},
	"&npreceq;":                         {Codepoints: []rune{10927, 824}, Characters: "\u2AAF\u0338"},
	"&npre;":                            {Codepoints: []rune{10927, 824}, Characters: "\u2AAF\u0338"},
	"&nrarrc;":                          {Codepoints: []rune{10547, 824}, Characters: "\u2933\u0338"},
	"&nrarr;":                           {Codepoints: []rune{8603}, Characters: "\u219B"},
	"&nrArr;":                           {Codepoints: []rune{8655}, Characters: "\u21CF"},
	"&nrarrw;":                          {Codepoints: []rune{8605, 824}, Characters: "\u219D\u0338"},
	"&nrightarrow;":                     {Codepoints: []rune{8603}, Characters: "\u219B"},
	"&nRightarrow;":                     {Codepoints: []rune{8655}, Characters: "\u21CF"},
	"&nrtri;":                           {Codepoints: []rune{8939}, Characters: "\u22EB"},
	"&nrtrie;":                          {Codepoints: []rune{8941}, Characters: "\u22ED"},
	"&nsc;":                             {Codepoints: []rune{8833}, Characters: "\u2281"},
	"&nsccue;":                          {Codepoints: []rune{8929}, Characters: "\u22E1"},
	"&nsce;":                            {Codepoints: []rune{10928, 824}, Characters: "\u2AB0\u0338"},
	"&Nscr;":                            {Codepoints: []rune{119977}, Characters: "\U0001D4A9"},
	"&nscr;":                            {Codepoints: []rune{120003}, Characters: "\U0001D4C3"},
	"&nshortmid;":                       {Codepoints: []rune{8740}, Characters: "\u2224"},
	"&nshortparallel;":                  {Codepoints: []rune{8742}, Characters: "\u2226"},
	"&nsim;":                            {Codepoints: []rune{8769}, Characters: "\u2241"},
	"&nsime;":                           {Codepoints: []rune{8772}, Characters: "\u2244"},
	"&nsimeq;":                          {Codepoints: []rune{8772}, Characters: "\u2244"},
	"&nsmid;":                           {Codepoints: []rune{8740}, Characters: "\u2224"},
	"&nspar;":                           {Codepoints: []rune{8742}, Characters: "\u2226"},
	"&nsqsube;":                         {Codepoints: []rune{8930}, Characters: "\u22E2"},
	"&nsqsupe;":                         {Codepoints: []rune{8931}, Characters: "\u22E3"},
	"&nsub;":                            {Codepoints: []rune{8836}, Characters: "\u2284"},
	"&nsubE;":                           {Codepoints: []rune{10949, 824}, Characters: "\u2AC5\u0338"},
	"&nsube;":                           {Codepoints: []rune{8840}, Characters: "\u2288"},
	"&nsubset;":                         {Codepoints: []rune{8834, 8402}, Characters: "\u2282\u20D2"},
	"&nsubseteq;":                       {Codepoints: []rune{8840}, Characters: "\u2288"},
	"&nsubseteqq;":                      {Codepoints: []rune{10949, 824}, Characters: "\u2AC5\u0338"},
	"&nsucc;":                           {Codepoints: []rune{8833}, Characters: "\u2281"},
	"&nsucceq;":                         {Codepoints: []rune{10928, 824}, Characters: "\u2AB0\u0338"},
	"&nsup;":                            {Codepoints: []rune{8837}, Characters: "\u2285"},
	"&nsupE;":                           {Codepoints: []rune{10950, 824}, Characters: "\u2AC6\u0338"},
	"&nsupe;":                           {Codepoints: []rune{8841}, Characters: "\u2289"},
	"&nsupset;":                         {Codepoints: []rune{8835, 8402}, Characters: "\u2283\u20D2"},
	"&nsupseteq;":                       {Codepoints: []rune{8841}, Characters: "\u2289"},
	"&nsupseteqq;":                      {Codepoints: []rune{10950, 824}, Characters: "\u2AC6\u0338"},
	"&ntgl;":                            {Codepoints: []rune{8825}, Characters: "\u2279"},
	"&Ntilde;":                          {Codepoints: []rune{209}, Characters: "\u00D1"},
	"&Ntilde":                           {Codepoints: []rune{209}, Characters: "\u00D1"},
	"&ntilde;":                          {Codepoints: []rune{241}, Characters: "\u00F1"},
	"&ntilde":                           {Codepoints: []rune{241}, Characters: "\u00F1"},
	"&ntlg;":                            {Codepoints: []rune{8824}, Characters: "\u2278"},
	"&ntriangleleft;":                   {Codepoints: []rune{8938}, Characters: "\u22EA"},
	"&ntrianglelefteq;":                 {Codepoints: []rune{8940}, Characters: "\u22EC"},
	"&ntriangleright;":                  {Codepoints: []rune{8939}, Characters: "\u22EB"},
	"&ntrianglerighteq;":                {Codepoints: []rune{8941}, Characters: "\u22ED"},
	"&Nu;":                              {Codepoints: []rune{925}, Characters: "\u039D"},
	"&nu;":                              {Codepoints: []rune{957}, Characters: "\u03BD"},
	"&num;":                             {Codepoints: []rune{35}, Characters: "#"},
	"&numero;":                          {Codepoints: []rune{8470}, Characters: "\u2116"},
	"&numsp;":                           {Codepoints: []rune{8199}, Characters: "\u2007"},
	"&nvap;":                            {Codepoints: []rune{8781, 8402}, Characters: "\u224D\u20D2"},
	"&nvdash;":                          {Codepoints: []rune{8876}, Characters: "\u22AC"},
	"&nvDash;":                          {Codepoints: []rune{8877}, Characters: "\u22AD"},
	"&nVdash;":                          {Codepoints: []rune{8878}, Characters: "\u22AE"},
	"&nVDash;":                          {Codepoints: []rune{8879}, Characters: "\u22AF"},
	"&nvge;":                            {Codepoints: []rune{8805, 8402}, Characters: "\u2265\u20D2"},
	"&nvgt;":                            {Codepoints: []rune{62, 8402}, Characters: ">\u20D2"},
	"&nvHarr;":                          {Codepoints: []rune{10500}, Characters: "\u2904"},
	"&nvinfin;":                         {Codepoints: []rune{10718}, Characters: "\u29DE"},
	"&nvlArr;":                          {Codepoints: []rune{10498}, Characters: "\u2902"},
	"&nvle;":                            {Codepoints: []rune{8804, 8402}, Characters: "\u2264\u20D2"},
	"&nvlt;":                            {Codepoints: []rune{60, 8402}, Characters: "<\u20D2"},
	"&nvltrie;":                         {Codepoints: []rune{8884, 8402}, Characters: "\u22B4\u20D2"},
	"&nvrArr;":                          {Codepoints: []rune{10499}, Characters: "\u2903"},
	"&nvrtrie;":                         {Codepoints: []rune{8885, 8402}, Characters: "\u22B5\u20D2"},
	"&nvsim;":                           {Codepoints: []rune{8764, 8402}, Characters: "\u223C\u20D2"},
	"&nwarhk;":                          {Codepoints: []rune{10531}, Characters: "\u2923"},
	"&nwarr;":                           {Codepoints: []rune{8598}, Characters: "\u2196"},
	"&nwArr;":                           {Codepoints: []rune{8662}, Characters: "\u21D6"},
	"&nwarrow;":                         {Codepoints: []rune{8598}, Characters: "\u2196"},
	"&nwnear;":                          {Codepoints: []rune{10535}, Characters: "\u2927"},
	"&Oacute;":                          {Codepoints: []rune{211}, Characters: "\u00D3"},
	"&Oacute":                           {Codepoints: []rune{211}, Characters: "\u00D3"},
	"&oacute;":                          {Codepoints: []rune{243}, Characters: "\u00F3"},
	"&oacute":                           {Codepoints: []rune{243}, Characters: "\u00F3"},
	"&oast;":                            {Codepoints: []rune{8859}, Characters: "\u229B"},
	"&Ocirc;":                           {Codepoints: []rune{212}, Characters: "\u00D4"},
	"&Ocirc":                            {Codepoints: []rune{212}, Characters: "\u00D4"},
	"&ocirc;":                           {Codepoints: []rune{244}, Characters: "\u00F4"},
	"&ocirc":                            {Codepoints: []rune{244}, Characters: "\u00F4"},
	"&ocir;":                            {Codepoints: []rune{8858}, Characters: "\u229A"},
	"&Ocy;":                             {Codepoints: []rune{1054}, Characters: "\u041E"},
	"&ocy;":                             {Codepoints: []rune{1086}, Characters: "\u043E"},
	"&odash;":                           {Codepoints: []rune{8861}, Characters: "\u229D"},
	"&Odblac;":                          {Codepoints: []rune{336}, Characters: "\u0150"},
	"&odblac;":                          {Codepoints: []rune{337}, Characters: "\u0151"},
	"&odiv;":                            {Codepoints: []rune{10808}, Characters: "\u2A38"},
	"&odot;":                            {Codepoints: []rune{8857}, Characters: "\u2299"},
	"&odsold;":                          {Codepoints: []rune{10684}, Characters: "\u29BC"},
	"&OElig;":                           {Codepoints: []rune{338}, Characters: "\u0152"},
	"&oelig;":                           {Codepoints: []rune{339}, Characters: "\u0153"},
	"&ofcir;":                           {Codepoints: []rune{10687}, Characters: "\u29BF"},
	"&Ofr;":                             {Codepoints: []rune{120082}, Characters: "\U0001D512"},
	"&ofr;":                             {Codepoints: []rune{120108}, Characters: "\U0001D52C"},
	"&ogon;":                            {Codepoints: []rune{731}, Characters: "\u02DB"},
	"&Ograve;":                          {Codepoints: []rune{210}, Characters: "\u00D2"},
	"&Ograve":                           {Codepoints: []rune{210}, Characters: "\u00D2"},
	"&ograve;":                          {Codepoints: []rune{242}, Characters: "\u00F2"},
	"&ograve":                           {Codepoints: []rune{242}, Characters: "\u00F2"},
	"&ogt;":                             {Codepoints: []rune{10689}, Characters: "\u29C1"},
	"&ohbar;":                           {Codepoints: []rune{10677}, Characters: "\u29B5"},
	"&ohm;":                             {Codepoints: []rune{937}, Characters: "\u03A9"},
	"&oint;":                            {Codepoints: []rune{8750}, Characters: "\u222E"},
	"&olarr;":                           {Codepoints: []rune{8634}, Characters: "\u21BA"},
	"&olcir;":                           {Codepoints: []rune{10686}, Characters: "\u29BE"},
	"&olcross;":                         {Codepoints: []rune{10683}, Characters: "\u29BB"},
	"&oline;":                           {Codepoints: []rune{8254}, Characters: "\u203E"},
	"&olt;":                             {Codepoints: []rune{10688}, Characters: "\u29C0"},
	"&Omacr;":                           {Codepoints: []rune{332}, Characters: "\u014C"},
	"&omacr;":                           {Codepoints: []rune{333}, Characters: "\u014D"},
	"&Omega;":                           {Codepoints: []rune{937}, Characters: "\u03A9"},
	"&omega;":                           {Codepoints: []rune{969}, Characters: "\u03C9"},
	"&Omicron;":                         {Codepoints: []rune{927}, Characters: "\u039F"},
	"&omicron;":                         {Codepoints: []rune{959}, Characters: "\u03BF"},
	"&omid;":                            {Codepoints: []rune{10678}, Characters: "\u29B6"},
	"&ominus;":                          {Codepoints: []rune{8854}, Characters: "\u2296"},
	"&Oopf;":                            {Codepoints: []rune{120134}, Characters: "\U0001D546"},
	"&oopf;":                            {Codepoints: []rune{120160}, Characters: "\U0001D560"},
	"&opar;":                            {Codepoints: []rune{10679}, Characters: "\u29B7"},
	"&OpenCurlyDoubleQuote;":            {Codepoints: []rune{8220}, Characters: "\u201C"},
	"&OpenCurlyQuote;":                  {Codepoints: []rune{8216}, Characters: "\u2018"},
	"&operp;":                           {Codepoints: []rune{10681}, Characters: "\u29B9"},
	"&oplus;":                           {Codepoints: []rune{8853}, Characters: "\u2295"},
	"&orarr;":                           {Codepoints: []rune{8635}, Characters: "\u21BB"},
	"&Or;":                              {Codepoints: []rune{10836}, Characters: "\u2A54"},
	"&or;":                              {Codepoints: []rune{8744}, Characters: "\u2228"},
	"&ord;":                             {Codepoints: []rune{10845}, Characters: "\u2A5D"},
	"&order;":                           {Codepoints: []rune{8500}, Characters: "\u2134"},
	"&orderof;":                         {Codepoints: []rune{8500}, Characters: "\u2134"},
	"&ordf;":                            {Codepoints: []rune{170}, Characters: "\u00AA"},
	"&ordf":                             {Codepoints: []rune{170}, Characters: "\u00AA"},
	"&ordm;":                            {Codepoints: []rune{186}, Characters: "\u00BA"},
	"&ordm":                             {Codepoints: []rune{186}, Characters: "\u00BA"},
	"&origof;":                          {Codepoints: []rune{8886}, Characters: "\u22B6"},
	"&oror;":                            {Codepoints: []rune{10838}, Characters: "\u2A56"},
	"&orslope;":                         {Codepoints: []rune{10839}, Characters: "\u2A57"},
	"&orv;":                             {Codepoints: []rune{10843}, Characters: "\u2A5B"},
	"&oS;":                              {Codepoints: []rune{9416}, Characters: "\u24C8"},
	"&Oscr;":                            {Codepoints: []rune{119978}, Characters: "\U0001D4AA"},
	"&oscr;":                            {Codepoints: []rune{8500}, Characters: "\u2134"},
	"&Oslash;":                          {Codepoints: []rune{216}, Characters: "\u00D8"},
	"&Oslash":                           {Codepoints: []rune{216}, Characters: "\u00D8"},
	"&oslash;":                          {Codepoints: []rune{248}, Characters: "\u00F8"},
	"&oslash":                           {Codepoints: []rune{248}, Characters: "\u00F8"},
	"&osol;":                            {Codepoints: []rune{8856}, Characters: "\u2298"},
	"&Otilde;":                          {Codepoints: []rune{213}, Characters: "\u00D5"},
	"&Otilde":                           {Codepoints: []rune{213}, Characters: "\u00D5"},
	"&otilde;":                          {Codepoints: []rune{245}, Characters: "\u00F5"},
	"&otilde":                           {Codepoints: []rune{245}, Characters: "\u00F5"},
	"&otimesas;":                        {Codepoints: []rune{10806}, Characters: "\u2A36"},
	"&Otimes;":                          {Codepoints: []rune{10807}, Characters: "\u2A37"},
	"&otimes;":                          {Codepoints: []rune{8855}, Characters: "\u2297"},
	"&Ouml;":                            {Codepoints: []rune{214}, Characters: "\u00D6"},
	"&Ouml":                             {Codepoints: []rune{214}, Characters: "\u00D6"},
	"&ouml;":                            {Codepoints: []rune{246}, Characters: "\u00F6"},
	"&ouml":                             {Codepoints: []rune{246}, Characters: "\u00F6"},
	"&ovbar;":                           {Codepoints: []rune{9021}, Characters: "\u233D"},
	"&OverBar;":                         {Codepoints: []rune{8254}, Characters: "\u203E"},
	"&OverBrace;":                       {Codepoints: []rune{9182}, Characters: "\u23DE"},
	"&OverBracket;":                     {Codepoints: []rune{9140}, Characters: "\u23B4"},
	"&OverParenthesis;":                 {Codepoints: []rune{9180}, Characters: "\u23DC"},
	"&para;":                            {Codepoints: []rune{182}, Characters: "\u00B6"},
	"&para":                             {Codepoints: []rune{182}, Characters: "\u00B6"},
	"&parallel;":                        {Codepoints: []rune{8741}, Characters: "\u2225"},
	"&par;":                             {Codepoints: []rune{8741}, Characters: "\u2225"},
	"&parsim;":                          {Codepoints: []rune{10995}, Characters: "\u2AF3"},
	"&parsl;":                           {Codepoints: []rune{11005}, Characters: "\u2AFD"},
	"&part;":                            {Codepoints: []rune{8706}, Characters: "\u2202"},
	"&PartialD;":                        {Codepoints: []rune{8706}, Characters: "\u2202"},
	"&Pcy;":                             {Codepoints: []rune{1055}, Characters: "\u041F"},
	"&pcy;":                             {Codepoints: []rune{1087}, Characters: "\u043F"},
	"&percnt;":                          {Codepoints: []rune{37}, Characters: "%"},
	"&period;":                          {Codepoints: []rune{46}, Characters: "."},
	"&permil;":                          {Codepoints: []rune{8240}, Characters: "\u2030"},
	"&perp;":                            {Codepoints: []rune{8869}, Characters: "\u22A5"},
	"&pertenk;":                         {Codepoints: []rune{8241}, Characters: "\u2031"},
	"&Pfr;":                             {Codepoints: []rune{120083}, Characters: "\U0001D513"},
	"&pfr;":                             {Codepoints: []rune{120109}, Characters: "\U0001D52D"},
	"&Phi;":                             {Codepoints: []rune{934}, Characters: "\u03A6"},
	"&phi;":                             {Codepoints: []rune{966}, Characters: "\u03C6"},
	"&phiv;":                            {Codepoints: []rune{981}, Characters: "\u03D5"},
	"&phmmat;":                          {Codepoints: []rune{8499}, Characters: "\u2133"},
	"&phone;":                           {Codepoints: []rune{9742}, Characters: "\u260E"},
	"&Pi;":                              {Codepoints: []rune{928}, Characters: "\u03A0"},
	"&pi;":                              {Codepoints: []rune{960}, Characters: "\u03C0"},
	"&pitchfork;":                       {Codepoints: []rune{8916}, Characters: "\u22D4"},
	"&piv;":                             {Codepoints: []rune{982}, Characters: "\u03D6"},
	"&planck;":                          {Codepoints: []rune{8463}, Characters: "\u210F"},
	"&planckh;":                         {Codepoints: []rune{8462}, Characters: "\u210E"},
	"&plankv;":                          {Codepoints: []rune{8463}, Characters: "\u210F"},
	"&plusacir;":                        {Codepoints: []rune{10787}, Characters: "\u2A23"},
	"&plusb;":                           {Codepoints: []rune{8862}, Characters: "\u229E"},
	"&pluscir;":                         {Codepoints: []rune{10786}, Characters: "\u2A22"},
	"&plus;":                            {Codepoints: []rune{43}, Characters: "+"},
	"&plusdo;":                          {Codepoints: []rune{8724}, Characters: "\u2214"},
	"&plusdu;":                          {Codepoints: []rune{10789}, Characters: "\u2A25"},
	"&pluse;":                           {Codepoints: []rune{10866}, Characters: "\u2A72"},
	"&PlusMinus;":                       {Codepoints: []rune{177}, Characters: "\u00B1"},
	"&plusmn;":                          {Codepoints: []rune{177}, Characters: "\u00B1"},
	"&plusmn":                           {Codepoints: []rune{177}, Characters: "\u00B1"},
	"&plussim;":                         {Codepoints: []rune{10790}, Characters: "\u2A26"},
	"&plustwo;":                         {Codepoints: []rune{10791}, Characters: "\u2A27"},
	"&pm;":                              {Codepoints: []rune{177}, Characters: "\u00B1"},
	"&Poincareplane;":                   {Codepoints: []rune{8460}, Characters: "\u210C"},
	"&pointint;":                        {Codepoints: []rune{10773}, Characters: "\u2A15"},
	"&popf;":                            {Codepoints: []rune{120161}, Characters: "\U0001D561"},
	"&Popf;":                            {Codepoints: []rune{8473}, Characters: "\u2119"},
	"&pound;":                           {Codepoints: []rune{163}, Characters: "\u00A3"},
	"&pound":                            {Codepoints: []rune{163}, Characters: "\u00A3"},
	"&prap;":                            {Codepoints: []rune{10935}, Characters: "\u2AB7"},
	"&Pr;":                              {Codepoints: []rune{10939}, Characters: "\u2ABB"},
	"&pr;":                              {Codepoints: []rune{8826}, Characters: "\u227A"},
	"&prcue;":                           {Codepoints: []rune{8828}, Characters: "\u227C"},
	"&precapprox;":                      {Codepoints: []rune{10935}, Characters: "\u2AB7"},
	"&prec;":                            {Codepoints: []rune{8826}, Characters: "\u227A"},
	"&preccurlyeq;":                     {Codepoints: []rune{8828}, Characters: "\u227C"},
	"&Precedes;":                        {Codepoints: []rune{8826}, Characters: "\u227A"},
	"&PrecedesEqual;":                   {Codepoints: []rune{10927}, Characters: "\u2AAF"},
	"&PrecedesSlantEqual;":              {Codepoints: []rune{8828}, Characters: "\u227C"},
	"&PrecedesTilde;":                   {Codepoints: []rune{8830}, Characters: "\u227E"},
	"&preceq;":                          {Codepoints: []rune{10927}, Characters: "\u2AAF"},
	"&precnapprox;":                     {Codepoints: []rune{10937}, Characters: "\u2AB9"},
	"&precneqq;":                        {Codepoints: []rune{10933}, Characters: "\u2AB5"},
	"&precnsim;":                        {Codepoints: []rune{8936}, Characters: "\u22E8"},
	"&pre;":                             {Codepoints: []rune{10927}, Characters: "\u2AAF"},
	"&prE;":                             {Codepoints: []rune{10931}, Characters: "\u2AB3"},
	"&precsim;":                         {Codepoints: []rune{8830}, Characters: "\u227E"},
	"&prime;":                           {Codepoints: []rune{8242}, Characters: "\u2032"},
	"&Prime;":                           {Codepoints: []rune{8243}, Characters: "\u2033"},
	"&primes;":                          {Codepoints: []rune{8473}, Characters: "\u2119"},
	"&prnap;":                           {Codepoints: []rune{10937}, Characters: "\u2AB9"},
	"&prnE;":                            {Codepoints: []rune{10933}, Characters: "\u2AB5"},
	"&prnsim;":                          {Codepoints: []rune{8936}, Characters: "\u22E8"},
	"&prod;":                            {Codepoints: []rune{8719}, Characters: "\u220F"},
	"&Product;":                         {Codepoints: []rune{8719}, Characters: "\u220F"},
	"&profalar;":                        {Codepoints: []rune{9006}, Characters: "\u232E"},
	"&profline;":                        {Codepoints: []rune{8978}, Characters: "\u2312"},
	"&profsurf;":                        {Codepoints: []rune{8979}, Characters: "\u2313"},
	"&prop;":                            {Codepoints: []rune{8733}, Characters: "\u221D"},
	"&Proportional;":                    {Codepoints: []rune{8733}, Characters: "\u221D"},
	"&Proportion;":                      {Codepoints: []rune{8759}, Characters: "\u2237"},
	"&propto;":                          {Codepoints: []rune{8733}, Characters: "\u221D"},
	"&prsim;":                           {Codepoints: []rune{8830}, Characters: "\u227E"},
	"&prurel;":                          {Codepoints: []rune{8880}, Characters: "\u22B0"},
	"&Pscr;":                            {Codepoints: []rune{119979}, Characters: "\U0001D4AB"},
	"&pscr;":                            {Codepoints: []rune{120005}, Characters: "\U0001D4C5"},
	"&Psi;":                             {Codepoints: []rune{936}, Characters: "\u03A8"},
	"&psi;":                             {Codepoints: []rune{968}, Characters: "\u03C8"},
	"&puncsp;":                          {Codepoints: []rune{8200}, Characters: "\u2008"},
	"&Qfr;":                             {Codepoints: []rune{120084}, Characters: "\U0001D514"},
	"&qfr;":                             {Codepoints: []rune{120110}, Characters: "\U0001D52E"},
	"&qint;":                            {Codepoints: []rune{10764}, Characters: "\u2A0C"},
	"&qopf;":                            {Codepoints: []rune{120162}, Characters: "\U0001D562"},
	"&Qopf;":                            {Codepoints: []rune{8474}, Characters: "\u211A"},
	"&qprime;":                          {Codepoints: []rune{8279}, Characters: "\u2057"},
	"&Qscr;":                            {Codepoints: []rune{119980}, Characters: "\U0001D4AC"},
	"&qscr;":                            {Codepoints: []rune{120006}, Characters: "\U0001D4C6"},
	"&quaternions;":                     {Codepoints: []rune{8461}, Characters: "\u210D"},
	"&quatint;":                         {Codepoints: []rune{10774}, Characters: "\u2A16"},
	"&quest;":                           {Codepoints: []rune{63}, Characters: "?"},
	"&questeq;":                         {Codepoints: []rune{8799}, Characters: "\u225F"},
	"&quot;":                            {Codepoints: []rune{34}, Characters: "\u0022"},
	"&quot":                             {Codepoints: []rune{34}, Characters: "\u0022"},
	"&QUOT;":                            {Codepoints: []rune{34}, Characters: "\u0022"},
	"&QUOT":                             {Codepoints: []rune{34}, Characters: "\u0022"},
	"&rAarr;":                           {Codepoints: []rune{8667}, Characters: "\u21DB"},
	"&race;":                            {Codepoints: []rune{8765, 817}, Characters: "\u223D\u0331"},
	"&Racute;":                          {Codepoints: []rune{340}, Characters: "\u0154"},
	"&racute;":                          {Codepoints: []rune{341}, Characters: "\u0155"},
	"&radic;":                           {Codepoints: []rune{8730}, Characters: "\u221A"},
	"&raemptyv;":                        {Codepoints: []rune{10675}, Characters: "\u29B3"},
	"&rang;":                            {Codepoints: []rune{10217}, Characters: "\u27E9"},
	"&Rang;":                            {Codepoints: []rune{10219}, Characters: "\u27EB"},
	"&rangd;":                           {Codepoints: []rune{10642}, Characters: "\u2992"},
	"&range;":                           {Codepoints: []rune{10661}, Characters: "\u29A5"},
	"&rangle;":                          {Codepoints: []rune{10217}, Characters: "\u27E9"},
	"&raquo;":                           {Codepoints: []rune{187}, Characters: "\u00BB"},
	"&raquo":                            {Codepoints: []rune{187}, Characters: "\u00BB"},
	"&rarrap;":                          {Codepoints: []rune{10613}, Characters: "\u2975"},
	"&rarrb;":                           {Codepoints: []rune{8677}, Characters: "\u21E5"},
	"&rarrbfs;":                         {Codepoints: []rune{10528}, Characters: "\u2920"},
	"&rarrc;":                           {Codepoints: []rune{10547}, Characters: "\u2933"},
	"&rarr;":                            {Codepoints: []rune{8594}, Characters: "\u2192"},
	"&Rarr;":                            {Codepoints: []rune{8608}, Characters: "\u21A0"},
	"&rArr;":                            {Codepoints: []rune{8658}, Characters: "\u21D2"},
	"&rarrfs;":                          {Codepoints: []rune{10526}, Characters: "\u291E"},
	"&rarrhk;":                          {Codepoints: []rune{8618}, Characters: "\u21AA"},
	"&rarrlp;":                          {Codepoints: []rune{8620}, Characters: "\u21AC"},
	"&rarrpl;":                          {Codepoints: []rune{10565}, Characters: "\u2945"},
	"&rarrsim;":                         {Codepoints: []rune{10612}, Characters: "\u2974"},
	"&Rarrtl;":                          {Codepoints: []rune{10518}, Characters: "\u2916"},
	"&rarrtl;":                          {Codepoints: []rune{8611}, Characters: "\u21A3"},
	"&rarrw;":                           {Codepoints: []rune{8605}, Characters: "\u219D"},
	"&ratail;":                          {Codepoints: []rune{10522}, Characters: "\u291A"},
	"&rAtail;":                          {Codepoints: []rune{10524}, Characters: "\u291C"},
	"&ratio;":                           {Codepoints: []rune{8758}, Characters: "\u2236"},
	"&rationals;":                       {Codepoints: []rune{8474}, Characters: "\u211A"},
	"&rbarr;":                           {Codepoints: []rune{10509}, Characters: "\u290D"},
	"&rBarr;":                           {Codepoints: []rune{10511}, Characters: "\u290F"},
	"&RBarr;":                           {Codepoints: []rune{10512}, Characters: "\u2910"},
	"&rbbrk;":                           {Codepoints: []rune{10099}, Characters: "\u2773"},
	"&rbrace;":                          {Codepoints: []rune{125}, Characters: "}"},
	"&rbrack;":                          {Codepoints: []rune{93}, Characters: "]"},
	"&rbrke;":                           {Codepoints: []rune{10636}, Characters: "\u298C"},
	"&rbrksld;":                         {Codepoints: []rune{10638}, Characters: "\u298E"},
	"&rbrkslu;":                         {Codepoints: []rune{10640}, Characters: "\u2990"},
	"&Rcaron;":                          {Codepoints: []rune{344}, Characters: "\u0158"},
	"&rcaron;":                          {Codepoints: []rune{345}, Characters: "\u0159"},
	"&Rcedil;":                          {Codepoints: []rune{342}, Characters: "\u0156"},
	"&rcedil;":                          {Codepoints: []rune{343}, Characters: "\u0157"},
	"&rceil;":                           {Codepoints: []rune{8969}, Characters: "\u2309"},
	"&rcub;":                            {Codepoints: []rune{125}, Characters: "}"},
	"&Rcy;":                             {Codepoints: []rune{1056}, Characters: "\u0420"},
	"&rcy;":                             {Codepoints: []rune{1088}, Characters: "\u0440"},
	"&rdca;":                            {Codepoints: []rune{10551}, Characters: "\u2937"},
	"&rdldhar;":                         {Codepoints: []rune{10601}, Characters: "\u2969"},
	"&rdquo;":                           {Codepoints: []rune{8221}, Characters: "\u201D"},
	"&rdquor;":                          {Codepoints: []rune{8221}, Characters: "\u201D"},
	"&rdsh;":                            {Codepoints: []rune{8627}, Characters: "\u21B3"},
	"&real;":                            {Codepoints: []rune{8476}, Characters: "\u211C"},
	"&realine;":                         {Codepoints: []rune{8475}, Characters: "\u211B"},
	"&realpart;":                        {Codepoints: []rune{8476}, Characters: "\u211C"},
	"&reals;":                           {Codepoints: []rune{8477}, Characters: "\u211D"},
	"&Re;":                              {Codepoints: []rune{8476}, Characters: "\u211C"},
	"&rect;":                            {Codepoints: []rune{9645}, Characters: "\u25AD"},
	"&reg;":                             {Codepoints: []rune{174}, Characters: "\u00AE"},
	"&reg":                              {Codepoints: []rune{174}, Characters: "\u00AE"},
	"&REG;":                             {Codepoints: []rune{174}, Characters: "\u00AE"},
	"&REG":                              {Codepoints: []rune{174}, Characters: "\u00AE"},
	"&ReverseElement;":                  {Codepoints: []rune{8715}, Characters: "\u220B"},
	"&ReverseEquilibrium;":              {Codepoints: []rune{8651}, Characters: "\u21CB"},
	"&ReverseUpEquilibrium;":            {Codepoints: []rune{10607}, Characters: "\u296F"},
	"&rfisht;":                          {Codepoints: []rune{10621}, Characters: "\u297D"},
	"&rfloor;":                          {Codepoints: []rune{8971}, Characters: "\u230B"},
	"&rfr;":                             {Codepoints: []rune{120111}, Characters: "\U0001D52F"},
	"&Rfr;":                             {Codepoints: []rune{8476}, Characters: "\u211C"},
	"&rHar;":                            {Codepoints: []rune{10596}, Characters: "\u2964"},
	"&rhard;":                           {Codepoints: []rune{8641}, Characters: "\u21C1"},
	"&rharu;":                           {Codepoints: []rune{8640}, Characters: "\u21C0"},
	"&rharul;":                          {Codepoints: []rune{10604}, Characters: "\u296C"},
	"&Rho;":                             {Codepoints: []rune{929}, Characters: "\u03A1"},
	"&rho;":                             {Codepoints: []rune{961}, Characters: "\u03C1"},
	"&rhov;":                            {Codepoints: []rune{1009}, Characters: "\u03F1"},
	"&RightAngleBracket;":               {Codepoints: []rune{10217}, Characters: "\u27E9"},
	"&RightArrowBar;":                   {Codepoints: []rune{8677}, Characters: "\u21E5"},
	"&rightarrow;":                      {Codepoints: []rune{8594}, Characters: "\u2192"},
	"&RightArrow;":                      {Codepoints: []rune{8594}, Characters: "\u2192"},
	"&Rightarrow;":                      {Codepoints: []rune{8658}, Characters: "\u21D2"},
	"&RightArrowLeftArrow;":             {Codepoints: []rune{8644}, Characters: "\u21C4"},
	"&rightarrowtail;":                  {Codepoints: []rune{8611}, Characters: "\u21A3"},
	"&RightCeiling;":                    {Codepoints: []rune{8969}, Characters: "\u2309"},
	"&RightDoubleBracket;":              {Codepoints: []rune{10215}, Characters: "\u27E7"},
	"&RightDownTeeVector;":              {Codepoints: []rune{10589}, Characters: "\u295D"},
	"&RightDownVectorBar;":              {Codepoints: []rune{10581}, Characters: "\u2955"},
	"&RightDownVector;":                 {Codepoints: []rune{8642}, Characters: "\u21C2"},
	"&RightFloor;":                      {Codepoints: []rune{8971}, Characters: "\u230B"},
	"&rightharpoondown;":                {Codepoints: []rune{8641}, Characters: "\u21C1"},
	"&rightharpoonup;":                  {Codepoints: []rune{8640}, Characters: "\u21C0"},
	"&rightleftarrows;":                 {Codepoints: []rune{8644}, Characters: "\u21C4"},
	"&rightleftharpoons;":               {Codepoints: []rune{8652}, Characters: "\u21CC"},
	"&rightrightarrows;":                {Codepoints: []rune{8649}, Characters: "\u21C9"},
	"&rightsquigarrow;":                 {Codepoints: []rune{8605}, Characters: "\u219D"},
	"&RightTeeArrow;":                   {Codepoints: []rune{8614}, Characters: "\u21A6"},
	"&RightTee;":                        {Codepoints: []rune{8866}, Characters: "\u22A2"},
	"&RightTeeVector;":                  {Codepoints: []rune{10587}, Characters: "\u295B"},
	"&rightthreetimes;":                 {Codepoints: []rune{8908}, Characters: "\u22CC"},
	"&RightTriangleBar;":                {Codepoints: []rune{10704}, Characters: "\u29D0"},
	"&RightTriangle;":                   {Codepoints: []rune{8883}, Characters: "\u22B3"},
	"&RightTriangleEqual;":              {Codepoints: []rune{8885}, Characters: "\u22B5"},
	"&RightUpDownVector;":               {Codepoints: []rune{10575}, Characters: "\u294F"},
	"&RightUpTeeVector;":                {Codepoints: []rune{10588}, Characters: "\u295C"},
	"&RightUpVectorBar;":                {Codepoints: []rune{10580}, Characters: "\u2954"},
	"&RightUpVector;":                   {Codepoints: []rune{8638}, Characters: "\u21BE"},
	"&RightVectorBar;":                  {Codepoints: []rune{10579}, Characters: "\u2953"},
	"&RightVector;":                     {Codepoints: []rune{8640}, Characters: "\u21C0"},
	"&ring;":                            {Codepoints: []rune{730}, Characters: "\u02DA"},
	"&risingdotseq;":                    {Codepoints: []rune{8787}, Characters: "\u2253"},
	"&rlarr;":                           {Codepoints: []rune{8644}, Characters: "\u21C4"},
	"&rlhar;":                           {Codepoints: []rune{8652}, Characters: "\u21CC"},
	"&rlm;":                             {Codepoints: []rune{8207}, Characters: "\u200F"},
	"&rmoustache;":                      {Codepoints: []rune{9137}, Characters: "\u23B1"},
	"&rmoust;":                          {Codepoints: []rune{9137}, Characters: "\u23B1"},
	"&rnmid;":                           {Codepoints: []rune{10990}, Characters: "\u2AEE"},
	"&roang;":                           {Codepoints: []rune{10221}, Characters: "\u27ED"},
	"&roarr;":                           {Codepoints: []rune{8702}, Characters: "\u21FE"},
	"&robrk;":                           {Codepoints: []rune{10215}, Characters: "\u27E7"},
	"&ropar;":                           {Codepoints: []rune{10630}, Characters: "\u2986"},
	"&ropf;":                            {Codepoints: []rune{120163}, Characters: "\U0001D563"},
	"&Ropf;":                            {Codepoints: []rune{8477}, Characters: "\u211D"},
	"&roplus;":                          {Codepoints: []rune{10798}, Characters: "\u2A2E"},
	"&rotimes;":                         {Codepoints: []rune{10805}, Characters: "\u2A35"},
	"&RoundImplies;":                    {Codepoints: []rune{10608}, Characters: "\u2970"},
	"&rpar;":                            {Codepoints: []rune{41}, Characters: ")"},
	"&rpargt;":                          {Codepoints: []rune{10644}, Characters: "\u2994"},
	"&rppolint;":                        {Codepoints: []rune{10770}, Characters: "\u2A12"},
	"&rrarr;":                           {Codepoints: []rune{8649}, Characters: "\u21C9"},
	"&Rrightarrow;":                     {Codepoints: []rune{8667}, Characters: "\u21DB"},
	"&rsaquo;":                          {Codepoints: []rune{8250}, Characters: "\u203A"},
	"&rscr;":                            {Codepoints: []rune{120007}, Characters: "\U0001D4C7"},
	"&Rscr;":                            {Codepoints: []rune{8475}, Characters: "\u211B"},
	"&rsh;":                             {Codepoints: []rune{8625}, Characters: "\u21B1"},
	"&Rsh;":                             {Codepoints: []rune{8625}, Characters: "\u21B1"},
	"&rsqb;":                            {Codepoints: []rune{93}, Characters: "]"},
	"&rsquo;":                           {Codepoints: []rune{8217}, Characters: "\u2019"},
	"&rsquor;":                          {Codepoints: []rune{8217}, Characters: "\u2019"},
	"&rthree;":                          {Codepoints: []rune{8908}, Characters: "\u22CC"},
	"&rtimes;":                          {Codepoints: []rune{8906}, Characters: "\u22CA"},
	"&rtri;":                            {Codepoints: []rune{9657}, Characters: "\u25B9"},
	"&rtrie;":                           {Codepoints: []rune{8885}, Characters: "\u22B5"},
	"&rtrif;":                           {Codepoints: []rune{9656}, Characters: "\u25B8"},
	"&rtriltri;":                        {Codepoints: []rune{10702}, Characters: "\u29CE"},
	"&RuleDelayed;":                     {Codepoints: []rune{10740}, Characters: "\u29F4"},
	"&ruluhar;":                         {Codepoints: []rune{10600}, Characters: "\u2968"},
	"&rx;":                              {Codepoints: []rune{8478}, Characters: "\u211E"},
	"&Sacute;":                          {Codepoints: []rune{346}, Characters: "\u015A"},
	"&sacute;":                          {Codepoints: []rune{347}, Characters: "\u015B"},
	"&sbquo;":                           {Codepoints: []rune{8218}, Characters: "\u201A"},
	"&scap;":                            {Codepoints: []rune{10936}, Characters: "\u2AB8"},
	"&Scaron;":                          {Codepoints: []rune{352}, Characters: "\u0160"},
	"&scaron;":                          {Codepoints: []rune{353}, Characters: "\u0161"},
	"&Sc;":                              {Codepoints: []rune{10940}, Characters: "\u2ABC"},
	"&sc;":                              {Codepoints: []rune{8827}, Characters: "\u227B"},
	"&sccue;":                           {Codepoints: []rune{8829}, Characters: "\u227D"},
	"&sce;":                             {Codepoints: []rune{10928}, Characters: "\u2AB0"},
	"&scE;":                             {Codepoints: []rune{10932}, Characters: "\u2AB4"},
	"&Scedil;":                          {Codepoints: []rune{350}, Characters: "\u015E"},
	"&scedil;":                          {Codepoints: []rune{351}, Characters: "\u015F"},
	"&Scirc;":                           {Codepoints: []rune{348}, Characters: "\u015C"},
	"&scirc;":                           {Codepoints: []rune{349}, Characters: "\u015D"},
	"&scnap;":                           {Codepoints: []rune{10938}, Characters: "\u2ABA"},
	"&scnE;":                            {Codepoints: []rune{10934}, Characters: "\u2AB6"},
	"&scnsim;":                          {Codepoints: []rune{8937}, Characters: "\u22E9"},
	"&scpolint;":                        {Codepoints: []rune{10771}, Characters: "\u2A13"},
	"&scsim;":                           {Codepoints: []rune{8831}, Characters: "\u227F"},
	"&Scy;":                             {Codepoints: []rune{1057}, Characters: "\u0421"},
	"&scy;":                             {Codepoints: []rune{1089}, Characters: "\u0441"},
	"&sdotb;":                           {Codepoints: []rune{8865}, Characters: "\u22A1"},
	"&sdot;":                            {Codepoints: []rune{8901}, Characters: "\u22C5"},
	"&sdote;":                           {Codepoints: []rune{10854}, Characters: "\u2A66"},
	"&searhk;":                          {Codepoints: []rune{10533}, Characters: "\u2925"},
	"&searr;":                           {Codepoints: []rune{8600}, Characters: "\u2198"},
	"&seArr;":                           {Codepoints: []rune{8664}, Characters: "\u21D8"},
	"&searrow;":                         {Codepoints: []rune{8600}, Characters: "\u2198"},
	"&sect;":                            {Codepoints: []rune{167}, Characters: "\u00A7"},
	"&sect":                             {Codepoints: []rune{167}, Characters: "\u00A7"},
	"&semi;":                            {Codepoints: []rune{59}, Characters: ";"},
	"&seswar;":                          {Codepoints: []rune{10537}, Characters: "\u2929"},
	"&setminus;":                        {Codepoints: []rune{8726}, Characters: "\u2216"},
	"&setmn;":                           {Codepoints: []rune{8726}, Characters: "\u2216"},
	"&sext;":                            {Codepoints: []rune{10038}, Characters: "\u2736"},
	"&Sfr;":                             {Codepoints: []rune{120086}, Characters: "\U0001D516"},
	"&sfr;":                             {Codepoints: []rune{120112}, Characters: "\U0001D530"},
	"&sfrown;":                          {Codepoints: []rune{8994}, Characters: "\u2322"},
	"&sharp;":                           {Codepoints: []rune{9839}, Characters: "\u266F"},
	"&SHCHcy;":                          {Codepoints: []rune{1065}, Characters: "\u0429"},
	"&shchcy;":                          {Codepoints: []rune{1097}, Characters: "\u0449"},
	"&SHcy;":                            {Codepoints: []rune{1064}, Characters: "\u0428"},
	"&shcy;":                            {Codepoints: []rune{1096}, Characters: "\u0448"},
	"&ShortDownArrow;":                  {Codepoints: []rune{8595}, Characters: "\u2193"},
	"&ShortLeftArrow;":                  {Codepoints: []rune{8592}, Characters: "\u2190"},
	"&shortmid;":                        {Codepoints: []rune{8739}, Characters: "\u2223"},
	"&shortparallel;":                   {Codepoints: []rune{8741}, Characters: "\u2225"},
	"&ShortRightArrow;":                 {Codepoints: []rune{8594}, Characters: "\u2192"},
	"&ShortUpArrow;":                    {Codepoints: []rune{8593}, Characters: "\u2191"},
	"&shy;":                             {Codepoints: []rune{173}, Characters: "\u00AD"},
	"&shy":                              {Codepoints: []rune{173}, Characters: "\u00AD"},
	"&Sigma;":                           {Codepoints: []rune{931}, Characters: "\u03A3"},
	"&sigma;":                           {Codepoints: []rune{963}, Characters: "\u03C3"},
	"&sigmaf;":                          {Codepoints: []rune{962}, Characters: "\u03C2"},
	"&sigmav;":                          {Codepoints: []rune{962}, Characters: "\u03C2"},
	"&sim;":                             {Codepoints: []rune{8764}, Characters: "\u223C"},
	"&simdot;":                          {Codepoints: []rune{10858}, Characters: "\u2A6A"},
	"&sime;":                            {Codepoints: []rune{8771}, Characters: "\u2243"},
	"&simeq;":                           {Codepoints: []rune{8771}, Characters: "\u2243"},
	"&simg;":                            {Codepoints: []rune{10910}, Characters: "\u2A9E"},
	"&simgE;":                           {Codepoints: []rune{10912}, Characters: "\u2AA0"},
	"&siml;":                            {Codepoints: []rune{10909}, Characters: "\u2A9D"},
	"&simlE;":                           {Codepoints: []rune{10911}, Characters: "\u2A9F"},
	"&simne;":                           {Codepoints: []rune{8774}, Characters: "\u2246"},
	"&simplus;":                         {Codepoints: []rune{10788}, Characters: "\u2A24"},
	"&simrarr;":                         {Codepoints: []rune{10610}, Characters: "\u2972"},
	"&slarr;":                           {Codepoints: []rune{8592}, Characters: "\u2190"},
	"&SmallCircle;":                     {Codepoints: []rune{8728}, Characters: "\u2218"},
	"&smallsetminus;":                   {Codepoints: []rune{8726}, Characters: "\u2216"},
	"&smashp;":                          {Codepoints: []rune{10803}, Characters: "\u2A33"},
	"&smeparsl;":                        {Codepoints: []rune{10724}, Characters: "\u29E4"},
	"&smid;":                            {Codepoints: []rune{8739}, Characters: "\u2223"},
	"&smile;":                           {Codepoints: []rune{8995}, Characters: "\u2323"},
	"&smt;":                             {Codepoints: []rune{10922}, Characters: "\u2AAA"},
	"&smte;":                            {Codepoints: []rune{10924}, Characters: "\u2AAC"},
	"&smtes;":                           {Codepoints: []rune{10924, 65024}, Characters: "\u2AAC\uFE00"},
	"&SOFTcy;":                          {Codepoints: []rune{1068}, Characters: "\u042C"},
	"&softcy;":                          {Codepoints: []rune{1100}, Characters: "\u044C"},
	"&solbar;":                          {Codepoints: []rune{9023}, Characters: "\u233F"},
	"&solb;":                            {Codepoints: []rune{10692}, Characters: "\u29C4"},
	"&sol;":                             {Codepoints: []rune{47}, Characters: "/"},
	"&Sopf;":                            {Codepoints: []rune{120138}, Characters: "\U0001D54A"},
	"&sopf;":                            {Codepoints: []rune{120164}, Characters: "\U0001D564"},
	"&spades;":                          {Codepoints: []rune{9824}, Characters: "\u2660"},
	"&spadesuit;":                       {Codepoints: []rune{9824}, Characters: "\u2660"},
	"&spar;":                            {Codepoints: []rune{8741}, Characters: "\u2225"},
	"&sqcap;":                           {Codepoints: []rune{8851}, Characters: "\u2293"},
	"&sqcaps;":                          {Codepoints: []rune{8851, 65024}, Characters: "\u2293\uFE00"},
	"&sqcup;":                           {Codepoints: []rune{8852}, Characters: "\u2294"},
	"&sqcups;":                          {Codepoints: []rune{8852, 65024}, Characters: "\u2294\uFE00"},
	"&Sqrt;":                            {Codepoints: []rune{8730}, Characters: "\u221A"},
	"&sqsub;":                           {Codepoints: []rune{8847}, Characters: "\u228F"},
	"&sqsube;":                          {Codepoints: []rune{8849}, Characters: "\u2291"},
	"&sqsubset;":                        {Codepoints: []rune{8847}, Characters: "\u228F"},
	"&sqsubseteq;":                      {Codepoints: []rune{8849}, Characters: "\u2291"},
	"&sqsup;":                           {Codepoints: []rune{8848}, Characters: "\u2290"},
	"&sqsupe;":                          {Codepoints: []rune{8850}, Characters: "\u2292"},
	"&sqsupset;":                        {Codepoints: []rune{8848}, Characters: "\u2290"},
	"&sqsupseteq;":                      {Codepoints: []rune{8850}, Characters: "\u2292"},
	"&square;":                          {Codepoints: []rune{9633}, Characters: "\u25A1"},
	"&Square;":                          {Codepoints: []rune{9633}, Characters: "\u25A1"},
	"&SquareIntersection;":              {Codepoints: []rune{8851}, Characters: "\u2293"},
	"&SquareSubset;":                    {Codepoints: []rune{8847}, Characters: "\u228F"},
	"&SquareSubsetEqual;":               {Codepoints: []rune{8849}, Characters: "\u2291"},
	"&SquareSuperset;":                  {Codepoints: []rune{8848}, Characters: "\u2290"},
	"&SquareSupersetEqual;":             {Codepoints: []rune{8850}, Characters: "\u2292"},
	"&SquareUnion;":                     {Codepoints: []rune{8852}, Characters: "\u2294"},
	"&squarf;":                          {Codepoints: []rune{9642}, Characters: "\u25AA"},
	"&squ;":                             {Codepoints: []rune{9633}, Characters: "\u25A1"},
	"&squf;":                            {Codepoints: []rune{9642}, Characters: "\u25AA"},
	"&srarr;":                           {Codepoints: []rune{8594}, Characters: "\u2192"},
	"&Sscr;":                            {Codepoints: []rune{119982}, Characters: "\U0001D4AE"},
	"&sscr;":                            {Codepoints: []rune{120008}, Characters: "\U0001D4C8"},
	"&ssetmn;":                          {Codepoints: []rune{8726}, Characters: "\u2216"},
	"&ssmile;":                          {Codepoints: []rune{8995}, Characters: "\u2323"},
	"&sstarf;":                          {Codepoints: []rune{8902}, Characters: "\u22C6"},
	"&Star;":                            {Codepoints: []rune{8902}, Characters: "\u22C6"},
	"&star;":                            {Codepoints: []rune{9734}, Characters: "\u2606"},
	"&starf;":                           {Codepoints: []rune{9733}, Characters: "\u2605"},
	"&straightepsilon;":                 {Codepoints: []rune{1013}, Characters: "\u03F5"},
	"&straightphi;":                     {Codepoints: []rune{981}, Characters: "\u03D5"},
	"&strns;":                           {Codepoints: []rune{175}, Characters: "\u00AF"},
	"&sub;":                             {Codepoints: []rune{8834}, Characters: "\u2282"},
	"&Sub;":                             {Codepoints: []rune{8912}, Characters: "\u22D0"},
	"&subdot;":                          {Codepoints: []rune{10941}, Characters: "\u2ABD"},
	"&subE;":                            {Codepoints: []rune{10949}, Characters: "\u2AC5"},
	"&sube;":                            {Codepoints: []rune{8838}, Characters: "\u2286"},
	"&subedot;":                         {Codepoints: []rune{10947}, Characters: "\u2AC3"},
	"&submult;":                         {Codepoints: []rune{10945}, Characters: "\u2AC1"},
	"&subnE;":                           {Codepoints: []rune{10955}, Characters: "\u2ACB"},
	"&subne;":                           {Codepoints: []rune{8842}, Characters: "\u228A"},
	"&subplus;":                         {Codepoints: []rune{10943}, Characters: "\u2ABF"},
	"&subrarr;":                         {Codepoints: []rune{10617}, Characters: "\u2979"},
	"&subset;":                          {Codepoints: []rune{8834}, Characters: "\u2282"},
	"&Subset;":                          {Codepoints: []rune{8912}, Characters: "\u22D0"},
	"&subseteq;":                        {Codepoints: []rune{8838}, Characters: "\u2286"},
	"&subseteqq;":                       {Codepoints: []rune{10949}, Characters: "\u2AC5"},
	"&SubsetEqual;":                     {Codepoints: []rune{8838}, Characters: "\u2286"},
	"&subsetneq;":                       {Codepoints: []rune{8842}, Characters: "\u228A"},
	"&subsetneqq;":                      {Codepoints: []rune{10955}, Characters: "\u2ACB"},
	"&subsim;":                          {Codepoints: []rune{10951}, Characters: "\u2AC7"},
	"&subsub;":                          {Codepoints: []rune{10965}, Characters: "\u2AD5"},
	"&subsup;":                          {Codepoints: []rune{10963}, Characters: "\u2AD3"},
	"&succapprox;":                      {Codepoints: []rune{10936}, Characters: "\u2AB8"},
	"&succ;":                            {Codepoints: []rune{8827}, Characters: "\u227B"},
	"&succcurlyeq;":                     {Codepoints: []rune{8829}, Characters: "\u227D"},
	"&Succeeds;":                        {Codepoints: []rune{8827}, Characters: "\u227B"},
	"&SucceedsEqual;":                   {Codepoints: []rune{10928}, Characters: "\u2AB0"},
	"&SucceedsSlantEqual;":              {Codepoints: []rune{8829}, Characters: "\u227D"},
	"&SucceedsTilde;":                   {Codepoints: []rune{8831}, Characters: "\u227F"},
	"&succeq;":                          {Codepoints: []rune{10928}, Characters: "\u2AB0"},
	"&succnapprox;":                     {Codepoints: []rune{10938}, Characters: "\u2ABA"},
	"&succneqq;":                        {Codepoints: []rune{10934}, Characters: "\u2AB6"},
	"&succnsim;":                        {Codepoints: []rune{8937}, Characters: "\u22E9"},
	"&succsim;":                         {Codepoints: []rune{8831}, Characters: "\u227F"},
	"&SuchThat;":                        {Codepoints: []rune{8715}, Characters: "\u220B"},
	"&sum;":                             {Codepoints: []rune{8721}, Characters: "\u2211"},
	"&Sum;":                             {Codepoints: []rune{8721}, Characters: "\u2211"},
	"&sung;":                            {Codepoints: []rune{9834}, Characters: "\u266A"},
	"&sup1;":                            {Codepoints: []rune{185}, Characters: "\u00B9"},
	"&sup1":                             {Codepoints: []rune{185}, Characters: "\u00B9"},
	"&sup2;":                            {Codepoints: []rune{178}, Characters: "\u00B2"},
	"&sup2":                             {Codepoints: []rune{178}, Characters: "\u00B2"},
	"&sup3;":                            {Codepoints: []rune{179}, Characters: "\u00B3"},
	"&sup3":                             {Codepoints: []rune{179}, Characters: "\u00B3"},
	"&sup;":                             {Codepoints: []rune{8835}, Characters: "\u2283"},
	"&Sup;":                             {Codepoints: []rune{8913}, Characters: "\u22D1"},
	"&supdot;":                          {Codepoints: []rune{10942}, Characters: "\u2ABE"},
	"&supdsub;":                         {Codepoints: []rune{10968}, Characters: "\u2AD8"},
	"&supE;":                            {Codepoints: []rune{10950}, Characters: "\u2AC6"},
	"&supe;":                            {Codepoints: []rune{8839}, Characters: "\u2287"},
	"&supedot;":                         {Codepoints: []rune{10948}, Characters: "\u2AC4"},
	"&Superset;":                        {Codepoints: []rune{8835}, Characters: "\u2283"},
	"&SupersetEqual;":                   {Codepoints: []rune{8839}, Characters: "\u2287"},
	"&suphsol;":                         {Codepoints: []rune{10185}, Characters: "\u27C9"},
	"&suphsub;":                         {Codepoints: []rune{10967}, Characters: "\u2AD7"},
	"&suplarr;":                         {Codepoints: []rune{10619}, Characters: "\u297B"},
	"&supmult;":                         {Codepoints: []rune{10946}, Characters: "\u2AC2"},
	"&supnE;":                           {Codepoints: []rune{10956}, Characters: "\u2ACC"},
	"&supne;":                           {Codepoints: []rune{8843}, Characters: "\u228B"},
	"&supplus;":                         {Codepoints: []rune{10944}, Characters: "\u2AC0"},
	"&supset;":                          {Codepoints: []rune{8835}, Characters: "\u2283"},
	"&Supset;":                          {Codepoints: []rune{8913}, Characters: "\u22D1"},
	"&supseteq;":                        {Codepoints: []rune{8839}, Characters: "\u2287"},
	"&supseteqq;":                       {Codepoints: []rune{10950}, Characters: "\u2AC6"},
	"&supsetneq;":                       {Codepoints: []rune{8843}, Characters: "\u228B"},
	"&supsetneqq;":                      {Codepoints: []rune{10956}, Characters: "\u2ACC"},
	"&supsim;":                          {Codepoints: []rune{10952}, Characters: "\u2AC8"},
	"&supsub;":                          {Codepoints: []rune{10964}, Characters: "\u2AD4"},
	"&supsup;":                          {Codepoints: []rune{10966}, Characters: "\u2AD6"},
	"&swarhk;":                          {Codepoints: []rune{10534}, Characters: "\u2926"},
	"&swarr;":                           {Codepoints: []rune{8601}, Characters: "\u2199"},
	"&swArr;":                           {Codepoints: []rune{8665}, Characters: "\u21D9"},
	"&swarrow;":                         {Codepoints: []rune{8601}, Characters: "\u2199"},
	"&swnwar;":                          {Codepoints: []rune{10538}, Characters: "\u292A"},
	"&szlig;":                           {Codepoints: []rune{223}, Characters: "\u00DF"},
	"&szlig":                            {Codepoints: []rune{223}, Characters: "\u00DF"},
	"&Tab;":                             {Codepoints: []rune{9}, Characters: "\u0009"},
	"&target;":                          {Codepoints: []rune{8982}, Characters: "\u2316"},
	"&Tau;":                             {Codepoints: []rune{932}, Characters: "\u03A4"},
	"&tau;":                             {Codepoints: []rune{964}, Characters: "\u03C4"},
	"&tbrk;":                            {Codepoints: []rune{9140}, Characters: "\u23B4"},
	"&Tcaron;":                          {Codepoints: []rune{356}, Characters: "\u0164"},
	"&tcaron;":                          {Codepoints: []rune{357}, Characters: "\u0165"},
	"&Tcedil;":                          {Codepoints: []rune{354}, Characters: "\u0162"},
	"&tcedil;":                          {Codepoints: []rune{355}, Characters: "\u0163"},
	"&Tcy;":                             {Codepoints: []rune{1058}, Characters: "\u0422"},
	"&tcy;":                             {Codepoints: []rune{1090}, Characters: "\u0442"},
	"&tdot;":                            {Codepoints: []rune{8411}, Characters: "\u20DB"},
	"&telrec;":                          {Codepoints: []rune{8981}, Characters: "\u2315"},
	"&Tfr;":                             {Codepoints: []rune{120087}, Characters: "\U0001D517"},
	"&tfr;":                             {Codepoints: []rune{120113}, Characters: "\U0001D531"},
	"&there4;":                          {Codepoints: []rune{8756}, Characters: "\u2234"},
	"&therefore;":                       {Codepoints: []rune{8756}, Characters: "\u2234"},
	"&Therefore;":                       {Codepoints: []rune{8756}, Characters: "\u2234"},
	"&Theta;":                           {Codepoints: []rune{920}, Characters: "\u0398"},
	"&theta;":                           {Codepoints: []rune{952}, Characters: "\u03B8"},
	"&thetasym;":                        {Codepoints: []rune{977}, Characters: "\u03D1"},
	"&thetav;":                          {Codepoints: []rune{977}, Characters: "\u03D1"},
	"&thickapprox;":                     {Codepoints: []rune{8776}, Characters: "\u2248"},
	"&thicksim;":                        {Codepoints: []rune{8764}, Characters: "\u223C"},
	"&ThickSpace;":                      {Codepoints: []rune{8287, 8202}, Characters: "\u205F\u200A"},
	"&ThinSpace;":                       {Codepoints: []rune{8201}, Characters: "\u2009"},
	"&thinsp;":                          {Codepoints: []rune{8201}, Characters: "\u2009"},
	"&thkap;":                           {Codepoints: []rune{8776}, Characters: "\u2248"},
	"&thksim;":                          {Codepoints: []rune{8764}, Characters: "\u223C"},
	"&THORN;":                           {Codepoints: []rune{222}, Characters: "\u00DE"},
	"&THORN":                            {Codepoints: []rune{222}, Characters: "\u00DE"},
	"&thorn;":                           {Codepoints: []rune{254}, Characters: "\u00FE"},
	"&thorn":                            {Codepoints: []rune{254}, Characters: "\u00FE"},
	"&tilde;":                           {Codepoints: []rune{732}, Characters: "\u02DC"},
	"&Tilde;":                           {Codepoints: []rune{8764}, Characters: "\u223C"},
	"&TildeEqual;":                      {Codepoints: []rune{8771}, Characters: "\u2243"},
	"&TildeFullEqual;":                  {Codepoints: []rune{8773}, Characters: "\u2245"},
	"&TildeTilde;":                      {Codepoints: []rune{8776}, Characters: "\u2248"},
	"&timesbar;":                        {Codepoints: []rune{10801}, Characters: "\u2A31"},
	"&timesb;":                          {Codepoints: []rune{8864}, Characters: "\u22A0"},
	"&times;":                           {Codepoints: []rune{215}, Characters: "\u00D7"},
	"&times":                            {Codepoints: []rune{215}, Characters: "\u00D7"},
	"&timesd;":                          {Codepoints: []rune{10800}, Characters: "\u2A30"},
	"&tint;":                            {Codepoints: []rune{8749}, Characters: "\u222D"},
	"&toea;":                            {Codepoints: []rune{10536}, Characters: "\u2928"},
	"&topbot;":                          {Codepoints: []rune{9014}, Characters: "\u2336"},
	"&topcir;":                          {Codepoints: []rune{10993}, Characters: "\u2AF1"},
	"&top;":                             {Codepoints: []rune{8868}, Characters: "\u22A4"},
	"&Topf;":                            {Codepoints: []rune{120139}, Characters: "\U0001D54B"},
	"&topf;":                            {Codepoints: []rune{120165}, Characters: "\U0001D565"},
	"&topfork;":                         {Codepoints: []rune{10970}, Characters: "\u2ADA"},
	"&tosa;":                            {Codepoints: []rune{10537}, Characters: "\u2929"},
	"&tprime;":                          {Codepoints: []rune{8244}, Characters: "\u2034"},
	"&trade;":                           {Codepoints: []rune{8482}, Characters: "\u2122"},
	"&TRADE;":                           {Codepoints: []rune{8482}, Characters: "\u2122"},
	"&triangle;":                        {Codepoints: []rune{9653}, Characters: "\u25B5"},
	"&triangledown;":                    {Codepoints: []rune{9663}, Characters: "\u25BF"},
	"&triangleleft;":                    {Codepoints: []rune{9667}, Characters: "\u25C3"},
	"&trianglelefteq;":                  {Codepoints: []rune{8884}, Characters: "\u22B4"},
	"&triangleq;":                       {Codepoints: []rune{8796}, Characters: "\u225C"},
	"&triangleright;":                   {Codepoints: []rune{9657}, Characters: "\u25B9"},
	"&trianglerighteq;":                 {Codepoints: []rune{8885}, Characters: "\u22B5"},
	"&tridot;":                          {Codepoints: []rune{9708}, Characters: "\u25EC"},
	"&trie;":                            {Codepoints: []rune{8796}, Characters: "\u225C"},
	"&triminus;":                        {Codepoints: []rune{10810}, Characters: "\u2A3A"},
	"&TripleDot;":                       {Codepoints: []rune{8411}, Characters: "\u20DB"},
	"&triplus;":                         {Codepoints: []rune{10809}, Characters: "\u2A39"},
	"&trisb;":                           {Codepoints: []rune{10701}, Characters: "\u29CD"},
	"&tritime;":                         {Codepoints: []rune{10811}, Characters: "\u2A3B"},
	"&trpezium;":                        {Codepoints: []rune{9186}, Characters: "\u23E2"},
	"&Tscr;":                            {Codepoints: []rune{119983}, Characters: "\U0001D4AF"},
	"&tscr;":                            {Codepoints: []rune{120009}, Characters: "\U0001D4C9"},
	"&TScy;":                            {Codepoints: []rune{1062}, Characters: "\u0426"},
	"&tscy;":                            {Codepoints: []rune{1094}, Characters: "\u0446"},
	"&TSHcy;":                           {Codepoints: []rune{1035}, Characters: "\u040B"},
	"&tshcy;":                           {Codepoints: []rune{1115}, Characters: "\u045B"},
	"&Tstrok;":                          {Codepoints: []rune{358}, Characters: "\u0166"},
	"&tstrok;":                          {Codepoints: []rune{359}, Characters: "\u0167"},
	"&twixt;":                           {Codepoints: []rune{8812}, Characters: "\u226C"},
	"&twoheadleftarrow;":                {Codepoints: []rune{8606}, Characters: "\u219E"},
	"&twoheadrightarrow;":               {Codepoints: []rune{8608}, Characters: "\u21A0"},
	"&Uacute;":                          {Codepoints: []rune{218}, Characters: "\u00DA"},
	"&Uacute":                           {Codepoints: []rune{218}, Characters: "\u00DA"},
	"&uacute;":                          {Codepoints: []rune{250}, Characters: "\u00FA"},
	"&uacute":                           {Codepoints: []rune{250}, Characters: "\u00FA"},
	"&uarr;":                            {Codepoints: []rune{8593}, Characters: "\u2191"},
	"&Uarr;":                            {Codepoints: []rune{8607}, Characters: "\u219F"},
	"&uArr;":                            {Codepoints: []rune{8657}, Characters: "\u21D1"},
	"&Uarrocir;":                        {Codepoints: []rune{10569}, Characters: "\u2949"},
	"&Ubrcy;":                           {Codepoints: []rune{1038}, Characters: "\u040E"},
	"&ubrcy;":                           {Codepoints: []rune{1118}, Characters: "\u045E"},
	"&Ubreve;":                          {Codepoints: []rune{364}, Characters: "\u016C"},
	"&ubreve;":                          {Codepoints: []rune{365}, Characters: "\u016D"},
	"&Ucirc;":                           {Codepoints: []rune{219}, Characters: "\u00DB"},
	"&Ucirc":                            {Codepoints: []rune{219}, Characters: "\u00DB"},
	"&ucirc;":                           {Codepoints: []rune{251}, Characters: "\u00FB"},
	"&ucirc":                            {Codepoints: []rune{251}, Characters: "\u00FB"},
	"&Ucy;":                             {Codepoints: []rune{1059}, Characters: "\u0423"},
	"&ucy;":                             {Codepoints: []rune{1091}, Characters: "\u0443"},
	"&udarr;":                           {Codepoints: []rune{8645}, Characters: "\u21C5"},
	"&Udblac;":                          {Codepoints: []rune{368}, Characters: "\u0170"},
	"&udblac;":                          {Codepoints: []rune{369}, Characters: "\u0171"},
	"&udhar;":                           {Codepoints: []rune{10606}, Characters: "\u296E"},
	"&ufisht;":                          {Codepoints: []rune{10622}, Characters: "\u297E"},
	"&Ufr;":                             {Codepoints: []rune{120088}, Characters: "\U0001D518"},
	"&ufr;":                             {Codepoints: []rune{120114}, Characters: "\U0001D532"},
	"&Ugrave;":                          {Codepoints: []rune{217}, Characters: "\u00D9"},
	"&Ugrave":                           {Codepoints: []rune{217}, Characters: "\u00D9"},
	"&ugrave;":                          {Codepoints: []rune{249}, Characters: "\u00F9"},
	"&ugrave":                           {Codepoints: []rune{249}, Characters: "\u00F9"},
	"&uHar;":                            {Codepoints: []rune{10595}, Characters: "\u2963"},
	"&uharl;":                           {Codepoints: []rune{8639}, Characters: "\u21BF"},
	"&uharr;":                           {Codepoints: []rune{8638}, Characters: "\u21BE"},
	"&uhblk;":                           {Codepoints: []rune{9600}, Characters: "\u2580"},
	"&ulcorn;":                          {Codepoints: []rune{8988}, Characters: "\u231C"},
	"&ulcorner;":                        {Codepoints: []rune{8988}, Characters: "\u231C"},
	"&ulcrop;":                          {Codepoints: []rune{8975}, Characters: "\u230F"},
	"&ultri;":                           {Codepoints: []rune{9720}, Characters: "\u25F8"},
	"&Umacr;":                           {Codepoints: []rune{362}, Characters: "\u016A"},
	"&umacr;":                           {Codepoints: []rune{363}, Characters: "\u016B"},
	"&uml;":                             {Codepoints: []rune{168}, Characters: "\u00A8"},
	"&uml":                              {Codepoints: []rune{168}, Characters: "\u00A8"},
	"&UnderBar;":                        {Codepoints: []rune{95}, Characters: "_"},
	"&UnderBrace;":                      {Codepoints: []rune{9183}, Characters: "\u23DF"},
	"&UnderBracket;":                    {Codepoints: []rune{9141}, Characters: "\u23B5"},
	"&UnderParenthesis;":                {Codepoints: []rune{9181}, Characters: "\u23DD"},
	"&Union;":                           {Codepoints: []rune{8899}, Characters: "\u22C3"},
	"&UnionPlus;":                       {Codepoints: []rune{8846}, Characters: "\u228E"},
	"&Uogon;":                           {Codepoints: []rune{370}, Characters: "\u0172"},
	"&uogon;":                           {Codepoints: []rune{371}, Characters: "\u0173"},
	"&Uopf;":                            {Codepoints: []rune{120140}, Characters: "\U0001D54C"},
	"&uopf;":                            {Codepoints: []rune{120166}, Characters: "\U0001D566"},
	"&UpArrowBar;":                      {Codepoints: []rune{10514}, Characters: "\u2912"},
	"&uparrow;":                         {Codepoints: []rune{8593}, Characters: "\u2191"},
	"&UpArrow;":                         {Codepoints: []rune{8593}, Characters: "\u2191"},
	"&Uparrow;":                         {Codepoints: []rune{8657}, Characters: "\u21D1"},
	"&UpArrowDownArrow;":                {Codepoints: []rune{8645}, Characters: "\u21C5"},
	"&updownarrow;":                     {Codepoints: []rune{8597}, Characters: "\u2195"},
	"&UpDownArrow;":                     {Codepoints: []rune{8597}, Characters: "\u2195"},
	"&Updownarrow;":                     {Codepoints: []rune{8661}, Characters: "\u21D5"},
	"&UpEquilibrium;":                   {Codepoints: []rune{10606}, Characters: "\u296E"},
	"&upharpoonleft;":                   {Codepoints: []rune{8639}, Characters: "\u21BF"},
	"&upharpoonright;":                  {Codepoints: []rune{8638}, Characters: "\u21BE"},
	"&uplus;":                           {Codepoints: []rune{8846}, Characters: "\u228E"},
	"&UpperLeftArrow;":                  {Codepoints: []rune{8598}, Characters: "\u2196"},
	"&UpperRightArrow;":                 {Codepoints: []rune{8599}, Characters: "\u2197"},
	"&upsi;":                            {Codepoints: []rune{965}, Characters: "\u03C5"},
	"&Upsi;":                            {Codepoints: []rune{978}, Characters: "\u03D2"},
	"&upsih;":                           {Codepoints: []rune{978}, Characters: "\u03D2"},
	"&Upsilon;":                         {Codepoints: []rune{933}, Characters: "\u03A5"},
	"&upsilon;":                         {Codepoints: []rune{965}, Characters: "\u03C5"},
	"&UpTeeArrow;":                      {Codepoints: []rune{8613}, Characters: "\u21A5"},
	"&UpTee;":                           {Codepoints: []rune{8869}, Characters: "\u22A5"},
	"&upuparrows;":                      {Codepoints: []rune{8648}, Characters: "\u21C8"},
	"&urcorn;":                          {Codepoints: []rune{8989}, Characters: "\u231D"},
	"&urcorner;":                        {Codepoints: []rune{8989}, Characters: "\u231D"},
	"&urcrop;":                          {Codepoints: []rune{8974}, Characters: "\u230E"},
	"&Uring;":                           {Codepoints: []rune{366}, Characters: "\u016E"},
	"&uring;":                           {Codepoints: []rune{367}, Characters: "\u016F"},
	"&urtri;":                           {Codepoints: []rune{9721}, Characters: "\u25F9"},
	"&Uscr;":                            {Codepoints: []rune{119984}, Characters: "\U0001D4B0"},
	"&uscr;":                            {Codepoints: []rune{120010}, Characters: "\U0001D4CA"},
	"&utdot;":                           {Codepoints: []rune{8944}, Characters: "\u22F0"},
	"&Utilde;":                          {Codepoints: []rune{360}, Characters: "\u0168"},
	"&utilde;":                          {Codepoints: []rune{361}, Characters: "\u0169"},
	"&utri;":                            {Codepoints: []rune{9653}, Characters: "\u25B5"},
	"&utrif;":                           {Codepoints: []rune{9652}, Characters: "\u25B4"},
	"&uuarr;":                           {Codepoints: []rune{8648}, Characters: "\u21C8"},
	"&Uuml;":                            {Codepoints: []rune{220}, Characters: "\u00DC"},
	"&Uuml":                             {Codepoints: []rune{220}, Characters: "\u00DC"},
	"&uuml;":                            {Codepoints: []rune{252}, Characters: "\u00FC"},
	"&uuml":                             {Codepoints: []rune{252}, Characters: "\u00FC"},
	"&uwangle;":                         {Codepoints: []rune{10663}, Characters: "\u29A7"},
	"&vangrt;":                          {Codepoints: []rune{10652}, Characters: "\u299C"},
	"&varepsilon;":                      {Codepoints: []rune{1013}, Characters: "\u03F5"},
	"&varkappa;":                        {Codepoints: []rune{1008}, Characters: "\u03F0"},
	"&varnothing;":                      {Codepoints: []rune{8709}, Characters: "\u2205"},
	"&varphi;":                          {Codepoints: []rune{981}, Characters: "\u03D5"},
	"&varpi;":                           {Codepoints: []rune{982}, Characters: "\u03D6"},
	"&varpropto;":                       {Codepoints: []rune{8733}, Characters: "\u221D"},
	"&varr;":                            {Codepoints: []rune{8597}, Characters: "\u2195"},
	"&vArr;":                            {Codepoints: []rune{8661}, Characters: "\u21D5"},
	"&varrho;":                          {Codepoints: []rune{1009}, Characters: "\u03F1"},
	"&varsigma;":                        {Codepoints: []rune{962}, Characters: "\u03C2"},
	"&varsubsetneq;":                    {Codepoints: []rune{8842, 65024}, Characters: "\u228A\uFE00"},
	"&varsubsetneqq;":                   {Codepoints: []rune{10955, 65024}, Characters: "\u2ACB\uFE00"},
	"&varsupsetneq;":                    {Codepoints: []rune{8843, 65024}, Characters: "\u228B\uFE00"},
	"&varsupsetneqq;":                   {Codepoints: []rune{10956, 65024}, Characters: "\u2ACC\uFE00"},
	"&vartheta;":                        {Codepoints: []rune{977}, Characters: "\u03D1"},
	"&vartriangleleft;":                 {Codepoints: []rune{8882}, Characters: "\u22B2"},
	"&vartriangleright;":                {Codepoints: []rune{8883}, Characters: "\u22B3"},
	"&vBar;":                            {Codepoints: []rune{10984}, Characters: "\u2AE8"},
	"&Vbar;":                            {Codepoints: []rune{10987}, Characters: "\u2AEB"},
	"&vBarv;":                           {Codepoints: []rune{10985}, Characters: "\u2AE9"},
	"&Vcy;":                             {Codepoints: []rune{1042}, Characters: "\u0412"},
	"&vcy;":                             {Codepoints: []rune{1074}, Characters: "\u0432"},
	"&vdash;":                           {Codepoints: []rune{8866}, Characters: "\u22A2"},
	"&vDash;":                           {Codepoints: []rune{8872}, Characters: "\u22A8"},
	"&Vdash;":                           {Codepoints: []rune{8873}, Characters: "\u22A9"},
	"&VDash;":                           {Codepoints: []rune{8875}, Characters: "\u22AB"},
	"&Vdashl;":                          {Codepoints: []rune{10982}, Characters: "\u2AE6"},
	"&veebar;":                          {Codepoints: []rune{8891}, Characters: "\u22BB"},
	"&vee;":                             {Codepoints: []rune{8744}, Characters: "\u2228"},
	"&Vee;":                             {Codepoints: []rune{8897}, Characters: "\u22C1"},
	"&veeeq;":                           {Codepoints: []rune{8794}, Characters: "\u225A"},
	"&vellip;":                          {Codepoints: []rune{8942}, Characters: "\u22EE"},
	"&verbar;":                          {Codepoints: []rune{124}, Characters: "|"},
	"&Verbar;":                          {Codepoints: []rune{8214}, Characters: "\u2016"},
	"&vert;":                            {Codepoints: []rune{124}, Characters: "|"},
	"&Vert;":                            {Codepoints: []rune{8214}, Characters: "\u2016"},
	"&VerticalBar;":                     {Codepoints: []rune{8739}, Characters: "\u2223"},
	"&VerticalLine;":                    {Codepoints: []rune{124}, Characters: "|"},
	"&VerticalSeparator;":               {Codepoints: []rune{10072}, Characters: "\u2758"},
	"&VerticalTilde;":                   {Codepoints: []rune{8768}, Characters: "\u2240"},
	"&VeryThinSpace;":                   {Codepoints: []rune{8202}, Characters: "\u200A"},
	"&Vfr;":                             {Codepoints: []rune{120089}, Characters: "\U0001D519"},
	"&vfr;":                             {Codepoints: []rune{120115}, Characters: "\U0001D533"},
	"&vltri;":                           {Codepoints: []rune{8882}, Characters: "\u22B2"},
	"&vnsub;":                           {Codepoints: []rune{8834, 8402}, Characters: "\u2282\u20D2"},
	"&vnsup;":                           {Codepoints: []rune{8835, 8402}, Characters: "\u2283\u20D2"},
	"&Vopf;":                            {Codepoints: []rune{120141}, Characters: "\U0001D54D"},
	"&vopf;":                            {Codepoints: []rune{120167}, Characters: "\U0001D567"},
	"&vprop;":                           {Codepoints: []rune{8733}, Characters: "\u221D"},
	"&vrtri;":                           {Codepoints: []rune{8883}, Characters: "\u22B3"},
	"&Vscr;":                            {Codepoints: []rune{119985}, Characters: "\U0001D4B1"},
	"&vscr;":                            {Codepoints: []rune{120011}, Characters: "\U0001D4CB"},
	"&vsubnE;":                          {Codepoints: []rune{10955, 65024}, Characters: "\u2ACB\uFE00"},
	"&vsubne;":                          {Codepoints: []rune{8842, 65024}, Characters: "\u228A\uFE00"},
	"&vsupnE;":                          {Codepoints: []rune{10956, 65024}, Characters: "\u2ACC\uFE00"},
	"&vsupne;":                          {Codepoints: []rune{8843, 65024}, Characters: "\u228B\uFE00"},
	"&Vvdash;":                          {Codepoints: []rune{8874}, Characters: "\u22AA"},
	"&vzigzag;":                         {Codepoints: []rune{10650}, Characters: "\u299A"},
	"&Wcirc;":                           {Codepoints: []rune{372}, Characters: "\u0174"},
	"&wcirc;":                           {Codepoints: []rune{373}, Characters: "\u0175"},
	"&wedbar;":                          {Codepoints: []rune{10847}, Characters: "\u2A5F"},
	"&wedge;":                           {Codepoints: []rune{8743}, Characters: "\u2227"},
	"&Wedge;":                           {Codepoints: []rune{8896}, Characters: "\u22C0"},
	"&wedgeq;":                          {Codepoints: []rune{8793}, Characters: "\u2259"},
	"&weierp;":                          {Codepoints: []rune{8472}, Characters: "\u2118"},
	"&Wfr;":                             {Codepoints: []rune{120090}, Characters: "\U0001D51A"},
	"&wfr;":                             {Codepoints: []rune{120116}, Characters: "\U0001D534"},
	"&Wopf;":                            {Codepoints: []rune{120142}, Characters: "\U0001D54E"},
	"&wopf;":                            {Codepoints: []rune{120168}, Characters: "\U0001D568"},
	"&wp;":                              {Codepoints: []rune{8472}, Characters: "\u2118"},
	"&wr;":                              {Codepoints: []rune{8768}, Characters: "\u2240"},
	"&wreath;":                          {Codepoints: []rune{8768}, Characters: "\u2240"},
	"&Wscr;":                            {Codepoints: []rune{119986}, Characters: "\U0001D4B2"},
	"&wscr;":                            {Codepoints: []rune{120012}, Characters: "\U0001D4CC"},
	"&xcap;":                            {Codepoints: []rune{8898}, Characters: "\u22C2"},
	"&xcirc;":                           {Codepoints: []rune{9711}, Characters: "\u25EF"},
	"&xcup;":                            {Codepoints: []rune{8899}, Characters: "\u22C3"},
	"&xdtri;":                           {Codepoints: []rune{9661}, Characters: "\u25BD"},
	"&Xfr;":                             {Codepoints: []rune{120091}, Characters: "\U0001D51B"},
	"&xfr;":                             {Codepoints: []rune{120117}, Characters: "\U0001D535"},
	"&xharr;":                           {Codepoints: []rune{10231}, Characters: "\u27F7"},
	"&xhArr;":                           {Codepoints: []rune{10234}, Characters: "\u27FA"},
	"&Xi;":                              {Codepoints: []rune{926}, Characters: "\u039E"},
	"&xi;":                              {Codepoints: []rune{958}, Characters: "\u03BE"},
	"&xlarr;":                           {Codepoints: []rune{10229}, Characters: "\u27F5"},
	"&xlArr;":                           {Codepoints: []rune{10232}, Characters: "\u27F8"},
	"&xmap;":                            {Codepoints: []rune{10236}, Characters: "\u27FC"},
	"&xnis;":                            {Codepoints: []rune{8955}, Characters: "\u22FB"},
	"&xodot;":                           {Codepoints: []rune{10752}, Characters: "\u2A00"},
	"&Xopf;":                            {Codepoints: []rune{120143}, Characters: "\U0001D54F"},
	"&xopf;":                            {Codepoints: []rune{120169}, Characters: "\U0001D569"},
	"&xoplus;":                          {Codepoints: []rune{10753}, Characters: "\u2A01"},
	"&xotime;":                          {Codepoints: []rune{10754}, Characters: "\u2A02"},
	"&xrarr;":                           {Codepoints: []rune{10230}, Characters: "\u27F6"},
	"&xrArr;":                           {Codepoints: []rune{10233}, Characters: "\u27F9"},
	"&Xscr;":                            {Codepoints: []rune{119987}, Characters: "\U0001D4B3"},
	"&xscr;":                            {Codepoints: []rune{120013}, Characters: "\U0001D4CD"},
	"&xsqcup;":                          {Codepoints: []rune{10758}, Characters: "\u2A06"},
	"&xuplus;":                          {Codepoints: []rune{10756}, Characters: "\u2A04"},
	"&xutri;":                           {Codepoints: []rune{9651}, Characters: "\u25B3"},
	"&xvee;":                            {Codepoints: []rune{8897}, Characters: "\u22C1"},
	"&xwedge;":                          {Codepoints: []rune{8896}, Characters: "\u22C0"},
	"&Yacute;":                          {Codepoints: []rune{221}, Characters: "\u00DD"},
	"&Yacute":                           {Codepoints: []rune{221}, Characters: "\u00DD"},
	"&yacute;":                          {Codepoints: []rune{253}, Characters: "\u00FD"},
	"&yacute":                           {Codepoints: []rune{253}, Characters: "\u00FD"},
	"&YAcy;":                            {Codepoints: []rune{1071}, Characters: "\u042F"},
	"&yacy;":                            {Codepoints: []rune{1103}, Characters: "\u044F"},
	"&Ycirc;":                           {Codepoints: []rune{374}, Characters: "\u0176"},
	"&ycirc;":                           {Codepoints: []rune{375}, Characters: "\u0177"},
	"&Ycy;":                             {Codepoints: []rune{1067}, Characters: "\u042B"},
	"&ycy;":                             {Codepoints: []rune{1099}, Characters: "\u044B"},
	"&yen;":                             {Codepoints: []rune{165}, Characters: "\u00A5"},
	"&yen":                              {Codepoints: []rune{165}, Characters: "\u00A5"},
	"&Yfr;":                             {Codepoints: []rune{120092}, Characters: "\U0001D51C"},
	"&yfr;":                             {Codepoints: []rune{120118}, Characters: "\U0001D536"},
	"&YIcy;":                            {Codepoints: []rune{1031}, Characters: "\u0407"},
	"&yicy;":                            {Codepoints: []rune{1111}, Characters: "\u0457"},
	"&Yopf;":                            {Codepoints: []rune{120144}, Characters: "\U0001D550"},
	"&yopf;":                            {Codepoints: []rune{120170}, Characters: "\U0001D56A"},
	"&Yscr;":                            {Codepoints: []rune{119988}, Characters: "\U0001D4B4"},
	"&yscr;":                            {Codepoints: []rune{120014}, Characters: "\U0001D4CE"},
	"&YUcy;":                            {Codepoints: []rune{1070}, Characters: "\u042E"},
	"&yucy;":                            {Codepoints: []rune{1102}, Characters: "\u044E"},
	"&yuml;":                            {Codepoints: []rune{255}, Characters: "\u00FF"},
	"&yuml":                             {Codepoints: []rune{255}, Characters: "\u00FF"},
	"&Yuml;":                            {Codepoints: []rune{376}, Characters: "\u0178"},
	"&Zacute;":                          {Codepoints: []rune{377}, Characters: "\u0179"},
	"&zacute;":                          {Codepoints: []rune{378}, Characters: "\u017A"},
	"&Zcaron;":                          {Codepoints: []rune{381}, Characters: "\u017D"},
	"&zcaron;":                          {Codepoints: []rune{382}, Characters: "\u017E"},
	"&Zcy;":                             {Codepoints: []rune{1047}, Characters: "\u0417"},
	"&zcy;":                             {Codepoints: []rune{1079}, Characters: "\u0437"},
	"&Zdot;":                            {Codepoints: []rune{379}, Characters: "\u017B"},
	"&zdot;":                            {Codepoints: []rune{380}, Characters: "\u017C"},
	"&zeetrf;":                          {Codepoints: []rune{8488}, Characters: "\u2128"},
	"&ZeroWidthSpace;":                  {Codepoints: []rune{8203}, Characters: "\u200B"},
	"&Zeta;":                            {Codepoints: []rune{918}, Characters: "\u0396"},
	"&zeta;":                            {Codepoints: []rune{950}, Characters: "\u03B6"},
	"&zfr;":                             {Codepoints: []rune{120119}, Characters: "\U0001D537"},
	"&Zfr;":                             {Codepoints: []rune{8488}, Characters: "\u2128"},
	"&ZHcy;":                            {Codepoints: []rune{1046}, Characters: "\u0416"},
	"&zhcy;":                            {Codepoints: []rune{1078}, Characters: "\u0436"},
	"&zigrarr;":                         {Codepoints: []rune{8669}, Characters: "\u21DD"},
	"&zopf;":                            {Codepoints: []rune{120171}, Characters: "\U0001D56B"},
	"&Zopf;":                            {Codepoints: []rune{8484}, Characters: "\u2124"},
	"&Zscr;":                            {Codepoints: []rune{119989}, Characters: "\U0001D4B5"},
	"&zscr;":                            {Codepoints: []rune{120015}, Characters: "\U0001D4CF"},
	"&zwj;":                             {Codepoints: []rune{8205}, Characters: "\u200D"},
	"&zwnj;":                            {Codepoints: []rune{8204}, Characters: "\u200C"},
}
