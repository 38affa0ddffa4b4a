package deck

// DefaultOutline returns the full 32-slide outline of the thesis deck,
// "AI Alzheimer and Dementia Classification". The deck is structured in three
// acts: the problem, seeing the brain, and the inconvenient truths, closed by
// a synthesis block. Chart images (chart:* prefix) are produced by the chart
// generator; everything else lives in the asset directory.
func DefaultOutline() []SlideSpec {
	return []SlideSpec{
		{
			Number:     1,
			Title:      "AI Alzheimer and Dementia\nClassification",
			Layout:     LayoutStatement,
			Background: BackgroundDark,
			Statement:  "AI Alzheimer and Dementia\nClassification",
			Subtitle:   "A Review of Neuroimaging, Machine Learning, and the Road to Clinical Translation",
			Body: []string{
				"Gavriilidis Paraskevas",
				"Department of Informatics and Computer Engineering",
				"University of West Attica, 2025",
			},
			Images:    []string{"logo_en.png"},
			Citations: []string{"Thesis Defense Presentation  •  University of West Attica"},
		},
		{
			Number:       2,
			Title:        "The Silent Epidemic",
			SectionLabel: "ACT I: THE PROBLEM",
			Layout:       LayoutHeroStatistic,
			Background:   BackgroundLight,
			HeroStat:     "7.2M",
			HeroCaption:  "Americans living with Alzheimer's disease",
			Body: []string{
				"Projected to reach 13.8 million by 2060.",
				"Annual cost exceeds $360 billion.",
				"Every 65 seconds, someone develops AD.",
			},
			Images: []string{"chart:prevalence_projection.png"},
			Citations: []string{
				"Alzheimer's Association, 2024 Facts and Figures",
				"Brookmeyer et al., 2007",
				"WHO Dementia Fact Sheet, 2023",
			},
		},
		{
			Number:     3,
			Title:      "The 20-Year Window",
			Layout:     LayoutStatement,
			Background: BackgroundDark,
			Statement:  "Pathology begins 15–20 years\nbefore the first symptom.",
			Subtitle: "This silent window is both the tragedy and the opportunity — early detection " +
				"through neuroimaging could transform Alzheimer's from a death sentence to a manageable condition.",
			Citations: []string{
				"Jack et al., 2010, Lancet Neurology",
				"Sperling et al., 2011, Alzheimer's & Dementia",
				"Bateman et al., 2012, NEJM",
			},
		},
		{
			Number:       4,
			Title:        "The AT(N) Framework",
			SectionLabel: "DIAGNOSTIC FRAMEWORK",
			Layout:       LayoutSplitCompare,
			Background:   BackgroundLight,
			Columns: []ColumnSpec{
				{Heading: "A", Subheading: "Amyloid",
					Body: []string{"Aβ42 in CSF, amyloid PET — the initiating pathology that seeds decades before symptoms."}},
				{Heading: "T", Subheading: "Tau",
					Body: []string{"Phosphorylated tau in CSF, tau PET — the spreading pathology that tracks with cognitive decline."}},
				{Heading: "(N)", Subheading: "Neurodegeneration",
					Body: []string{"MRI atrophy, FDG-PET hypometabolism — the downstream damage visible on structural imaging."}},
			},
			Citations: []string{
				"Jack et al., 2018, Alzheimer's & Dementia (NIA-AA Research Framework)",
				"Dubois et al., 2014, Lancet Neurology",
			},
		},
		{
			Number:       5,
			Title:        "Why Neuroimaging?",
			SectionLabel: "THE CASE FOR IMAGING",
			Layout:       LayoutFullBleed,
			Background:   BackgroundImage,
			Body: []string{
				"Non-invasive — no lumbar punctures, no radioactive tracers for structural MRI.",
				"Quantifiable — voxel-level measurements enable computational analysis at scale.",
				"Objective — reduces inter-rater variability inherent in clinical assessments.",
				"Accessible — MRI scanners exist in most regional hospitals worldwide.",
			},
			Images: []string{"nihms-137059-f0004.jpg"},
			Citations: []string{
				"Frisoni et al., 2010, Nature Reviews Neurology",
				"Jack et al., 2008, Brain",
			},
		},
		{
			Number:       6,
			Title:        "The Benchmark Datasets",
			SectionLabel: "DATA FOUNDATIONS",
			Layout:       LayoutSplitCompare,
			Background:   BackgroundLight,
			Columns: []ColumnSpec{
				{Heading: "ADNI", Subheading: "Alzheimer's Disease Neuroimaging Initiative",
					Body: []string{"2,400+ subjects across 4 phases (2004–present). Multi-site, longitudinal MRI, PET, genetics, CSF biomarkers. The gold standard for AD research.", "adni.loni.usc.edu"}},
				{Heading: "AIBL", Subheading: "Australian Imaging, Biomarker & Lifestyle",
					Body: []string{"1,100+ participants from Melbourne and Perth. Enriched for pre-clinical AD with extensive lifestyle data. Independent validation cohort.", "aibl.csiro.au"}},
				{Heading: "OASIS", Subheading: "Open Access Series of Imaging Studies",
					Body: []string{"2,000+ sessions across OASIS-1/2/3/4. Cross-sectional and longitudinal, freely available. Widely used for reproducibility benchmarks.", "oasis-brains.org"}},
			},
			Citations: []string{
				"Mueller et al., 2005, Neuroimaging Clin N Am (ADNI)",
				"Ellis et al., 2009, Int Psychogeriatr (AIBL)",
				"Marcus et al., 2007, J Cogn Neurosci (OASIS)",
			},
		},
		{
			Number:       7,
			Title:        "SEEING THE BRAIN",
			SectionLabel: "ACT II",
			Layout:       LayoutStatement,
			Background:   BackgroundDark,
			Statement:    "SEEING THE BRAIN",
			Subtitle:     "Imaging modalities, preprocessing, and the computational pipeline",
			Citations:    []string{"Section 2: Neuroimaging Modalities and Preprocessing"},
		},
		{
			Number:       8,
			Title:        "MRI Fundamentals",
			SectionLabel: "IMAGING MODALITIES",
			Layout:       LayoutFullBleed,
			Background:   BackgroundDark,
			Body: []string{
				"Magnetic Resonance Imaging exploits the Larmor equation: nuclei precess at frequencies proportional to field strength.",
				"T1-weighted scans provide excellent gray/white matter contrast — the workhorse of structural neuroimaging.",
				"T2-weighted and FLAIR sequences detect pathological fluid accumulation and white matter lesions.",
				"Modern 3T scanners achieve sub-millimeter resolution, enabling voxel-level analysis of atrophy patterns.",
			},
			Images: []string{"IntensityNormalization1.png"},
			Citations: []string{
				"McRobbie et al., 2017, MRI from Picture to Proton",
				"Jack et al., 2008, Brain",
			},
		},
		{
			Number:       9,
			Title:        "CT vs PET Imaging",
			SectionLabel: "MODALITY COMPARISON",
			Layout:       LayoutSplitCompare,
			Background:   BackgroundLight,
			Columns: []ColumnSpec{
				{Heading: "CT — Structural Anatomy", Image: "pmp-32-1-1-f1.png",
					Body: []string{"Fast, widely available. Shows calcifications and acute hemorrhage. Limited soft-tissue contrast makes it secondary to MRI for dementia assessment."}},
				{Heading: "PET — Molecular Function", Image: "pmp-32-1-1-f4.png",
					Body: []string{"Reveals metabolic activity (FDG) or protein deposits (amyloid/tau tracers). Essential for early detection but expensive and requires radioactive tracers."}},
			},
			Citations: []string{
				"Park et al., 2020, Prog Med Phys",
				"Johnson et al., 2012, Ann Neurol",
			},
		},
		{
			Number:       10,
			Title:        "PET Biomarkers",
			SectionLabel: "MOLECULAR IMAGING",
			Layout:       LayoutHeroStatistic,
			Background:   BackgroundLight,
			HeroStat:     "90%",
			HeroCaption:  "FDG-PET sensitivity for AD detection",
			Columns: []ColumnSpec{
				{Heading: "FDG-PET", Body: []string{"Measures glucose metabolism. Hypometabolism in temporo-parietal regions is a hallmark of AD. Sensitivity ~90%, specificity ~71%."}},
				{Heading: "Amyloid PET", Body: []string{"Pittsburgh Compound B (PiB), Florbetapir. Detects amyloid plaques 15–20 years before symptoms. Changed clinical trial enrollment."}},
				{Heading: "Tau PET", Body: []string{"Flortaucipir (AV-1451). Maps neurofibrillary tangle distribution. Correlates more closely with cognitive decline than amyloid."}},
			},
			Citations: []string{
				"Silverman et al., 2004, J Nucl Med (FDG)",
				"Klunk et al., 2004, Ann Neurol (PiB)",
				"Johnson et al., 2016, Ann Neurol (Tau)",
			},
		},
		{
			Number:       11,
			Title:        "The Preprocessing Pipeline",
			SectionLabel: "PREPROCESSING",
			Layout:       LayoutDarkCanvas,
			Background:   BackgroundDark,
			Columns: []ColumnSpec{
				{Heading: "1", Subheading: "Raw MRI Acquisition"},
				{Heading: "2", Subheading: "Intensity Normalization"},
				{Heading: "3", Subheading: "Denoising (NLM/BM3D)"},
				{Heading: "4", Subheading: "Skull Stripping"},
				{Heading: "5", Subheading: "Registration & Segmentation"},
			},
			Body: []string{
				"Each step introduces assumptions and potential artifacts. Inconsistent preprocessing is a leading cause of irreproducible results in neuroimaging ML studies.",
			},
			Citations: []string{
				"Esteban et al., 2019, NeuroImage (fMRIPrep)",
				"Ashburner, 2007, NeuroImage",
			},
		},
		{
			Number:       12,
			Title:        "Intensity Normalization",
			SectionLabel: "PREPROCESSING",
			Layout:       LayoutSplitCompare,
			Background:   BackgroundLight,
			Columns: []ColumnSpec{
				{Heading: "Z-Score Normalization", Image: "IntensityNormalization2.png",
					Body: []string{"Subtracts mean, divides by standard deviation. Simple but assumes Gaussian intensity distribution."}},
				{Heading: "Histogram Matching", Image: "IntensityNormalization3.png",
					Body: []string{"Aligns intensity distributions across scans. Robust to scanner variability but can distort pathological signals."}},
				{Heading: "White Stripe",
					Body: []string{"Uses normal-appearing white matter as internal reference. Most principled approach for multi-site studies."}},
			},
			Citations: []string{
				"Shinohara et al., 2014, NeuroImage (White Stripe)",
				"Nyúl et al., 2000, IEEE TMI",
				"Shah et al., 2011, J Neurosci Methods",
			},
		},
		{
			Number:       13,
			Title:        "Denoising Strategies",
			SectionLabel: "PREPROCESSING",
			Layout:       LayoutSplitCompare,
			Background:   BackgroundLight,
			Columns: []ColumnSpec{
				{Heading: "NLM", Subheading: "Non-Local Means",
					Body: []string{"Exploits self-similarity across patches. Weighted average of similar neighborhoods. Preserves edges better than Gaussian filtering. O(n²) complexity."}},
				{Heading: "BM3D", Subheading: "Block-Matching 3D",
					Body: []string{"Groups similar 2D blocks into 3D arrays, applies collaborative filtering in transform domain. State-of-the-art for natural images, adapted for MRI."}},
				{Heading: "DL", Subheading: "Deep Learning",
					Body: []string{"Encoder-decoder networks (DnCNN, U-Net variants). Learn noise patterns from paired data. Fastest inference but require training data matching target scanner."}},
			},
			Citations: []string{
				"Buades et al., 2005, CVPR (NLM)",
				"Dabov et al., 2007, IEEE TIP (BM3D)",
				"Zhang et al., 2017, IEEE TIP (DnCNN)",
			},
		},
		{
			Number:       14,
			Title:        "Skull Stripping",
			SectionLabel: "PREPROCESSING",
			Layout:       LayoutFullBleed,
			Background:   BackgroundImage,
			Body: []string{
				"Removal of non-brain tissue (skull, scalp, dura mater) is critical — residual skull can dominate classifier features.",
				"Classical: BET (FSL), FreeSurfer watershed. Robust but slow and require manual QC.",
				"Deep learning: HD-BET, SynthStrip achieve Dice >0.97 with zero manual intervention.",
				"Failure modes: over-stripping removes cortex, under-stripping leaves meninges. Both corrupt downstream VBM and classification.",
			},
			Images: []string{"Skull Stripping image.png", "Skull Stripping Techniques.png"},
			Citations: []string{
				"Smith, 2002, HBM (BET)",
				"Isensee et al., 2019, NeuroImage (HD-BET)",
				"Hoopes et al., 2022, NeuroImage (SynthStrip)",
			},
		},
		{
			Number:       15,
			Title:        "Voxel-Based Morphometry",
			SectionLabel: "FEATURE EXTRACTION",
			Layout:       LayoutFullBleed,
			Background:   BackgroundDark,
			Body: []string{
				"VBM quantifies regional gray matter concentration differences across the entire brain, without pre-selecting regions of interest.",
				"Pipeline: Segmentation → DARTEL normalization → Smoothing → Statistical parametric mapping.",
				"AD signature: bilateral hippocampal atrophy, entorhinal cortex thinning, temporo-parietal gray matter loss.",
				"AUC >0.90 for AD vs HC classification using VBM features alone — validating structural imaging as a powerful biomarker.",
			},
			Images: []string{"nihms154848f1.jpg"},
			Citations: []string{
				"Ashburner & Friston, 2000, NeuroImage (VBM)",
				"Karas et al., 2004, NeuroImage",
			},
		},
		{
			Number:       16,
			Title:        "Classical ML",
			SectionLabel: "MACHINE LEARNING",
			Layout:       LayoutHeroStatistic,
			Background:   BackgroundLight,
			HeroStat:     "94.5%",
			HeroCaption:  "SVM accuracy for AD vs Healthy Controls",
			Body: []string{
				"But the MCI cliff tells the real story — accuracy drops to ~68% for mild cognitive impairment detection.",
				"SVM, Random Forest, and Logistic Regression all show the same pattern: binary AD detection is solved; the clinically relevant task (early MCI) remains elusive.",
			},
			Images: []string{"chart:ml_comparison.png"},
			Citations: []string{
				"Cuingnet et al., 2011, NeuroImage",
				"Rathore et al., 2017, NeuroImage",
			},
		},
		{
			Number:       17,
			Title:        "The Deep Learning Revolution",
			SectionLabel: "DEEP LEARNING",
			Layout:       LayoutDarkCanvas,
			Background:   BackgroundDark,
			Columns: []ColumnSpec{
				{Heading: "2D CNN", Subheading: "Slice-level",
					Body: []string{"Process individual 2D slices. Fast training, large effective dataset (N × slices). Miss inter-slice spatial relationships. Risk of information leakage between slices of same subject."}},
				{Heading: "3D CNN", Subheading: "Volume-level",
					Body: []string{"Process entire 3D brain volumes. Capture spatial context across all axes. Require more GPU memory and larger datasets. More prone to overfitting on small cohorts."}},
				{Heading: "ResNet/DenseNet", Subheading: "Transfer Learning",
					Body: []string{"Pre-trained on ImageNet, fine-tuned on brain scans. Exploit low-level feature reuse. Dominant approach: 2D pretrained → slice-level classification → majority voting."}},
			},
			Citations: []string{
				"He et al., 2016, CVPR (ResNet)",
				"Huang et al., 2017, CVPR (DenseNet)",
				"Wen et al., 2020, Med Image Anal",
			},
		},
		{
			Number:       18,
			Title:        "Vision Transformers & Hybrid Models",
			SectionLabel: "ADVANCED ARCHITECTURES",
			Layout:       LayoutSplitCompare,
			Background:   BackgroundLight,
			Columns: []ColumnSpec{
				{Heading: "Vision Transformer (ViT)",
					Body: []string{
						"Patches brain images into 16×16 tokens, processes via self-attention.",
						"Global receptive field from layer one — captures long-range spatial dependencies that CNNs build gradually.",
						"Data hungry: requires large datasets or pre-training. Performance degrades sharply on small cohorts (<500 subjects).",
						"Emerging evidence: attention maps align with known AD atrophy regions.",
					}},
				{Heading: "Hybrid CNN + Transformer",
					Body: []string{
						"CNN backbone extracts local features; transformer head captures global context.",
						"Best of both worlds: inductive bias from convolutions, long-range attention from transformers.",
						"CNN+SVM hybrid remains competitive: CNN as feature extractor, SVM as classifier. Simpler, more interpretable.",
						"Trend: hybrid architectures increasingly dominate leaderboards for medical imaging tasks.",
					}},
			},
			Citations: []string{
				"Dosovitskiy et al., 2021, ICLR (ViT)",
				"Lyu et al., 2022, Med Image Anal",
			},
		},
		{
			Number:       19,
			Title:        "Measuring Performance",
			SectionLabel: "EVALUATION",
			Layout:       LayoutHeroStatistic,
			Background:   BackgroundLight,
			HeroStat:     "0.93",
			HeroCaption:  "AUC-ROC of the best model — the gold standard for comparing classifiers",
			Body: []string{
				"Accuracy alone is misleading when classes are imbalanced — a model predicting \"no AD\" achieves 85% accuracy trivially.",
				"Sensitivity (Recall) — proportion of true AD cases detected. Missing a diagnosis has devastating consequences.",
				"Specificity — proportion of healthy controls correctly identified. False positives cause unnecessary anxiety and procedures.",
				"AUC-ROC — threshold-independent measure of discriminative power.",
			},
			Images: []string{"chart:roc_curve.png"},
			Citations: []string{
				"Fawcett, 2006, Pattern Recognit Lett (ROC)",
				"Saito & Rehmsmeier, 2015, PLOS ONE",
			},
		},
		{
			Number:       20,
			Title:        "Opening the Black Box",
			SectionLabel: "EXPLAINABILITY",
			Layout:       LayoutFullBleed,
			Background:   BackgroundDark,
			Columns: []ColumnSpec{
				{Heading: "Grad-CAM", Body: []string{"Gradient-weighted class activation maps highlight which brain regions drive the classification decision. Visual, intuitive, but coarse resolution."}},
				{Heading: "LIME", Body: []string{"Locally Interpretable Model-agnostic Explanations perturb input regions and observe output changes. Model-agnostic but computationally expensive for 3D volumes."}},
				{Heading: "SHAP", Body: []string{"SHapley Additive exPlanations provide theoretically grounded feature attributions. Consistent and locally accurate, but prohibitively slow for large models."}},
			},
			Body: []string{
				"The three pillars: Transparency (how it works), Justification (why this prediction), and Informativeness (what we learn about the disease).",
			},
			Images: []string{"Grad-CAMVBM.png"},
			Citations: []string{
				"Selvaraju et al., 2017, ICCV (Grad-CAM)",
				"Ribeiro et al., 2016, KDD (LIME)",
				"Lundberg & Lee, 2017, NeurIPS (SHAP)",
			},
		},
		{
			Number:       21,
			Title:        "Grad-CAM Across Dementia Stages",
			SectionLabel: "EXPERIMENTS",
			Layout:       LayoutFullBleed,
			Background:   BackgroundDark,
			Body: []string{
				"Our Grad-CAM analysis reveals attention patterns across four dementia stages from the OASIS dataset.",
				"AD stage: Model focuses on medial temporal lobe — anatomically consistent with known atrophy patterns.",
				"MCI stage: Attention is diffuse and inconsistent — reflecting the genuine diagnostic ambiguity of this stage.",
				"Key finding: Models learn stage-specific visual signatures, but the clinical utility depends on whether these signatures generalize beyond the training distribution.",
			},
			Images: []string{"limitations_gradcam.png"},
			Citations: []string{
				"Experimental results from thesis Chapter 8",
				"OASIS-3 dataset",
				"ResNet-50 backbone with Grad-CAM visualization",
			},
		},
		{
			Number:       22,
			Title:        "THE INCONVENIENT TRUTHS",
			SectionLabel: "ACT III",
			Layout:       LayoutStatement,
			Background:   BackgroundDark,
			Statement:    "THE INCONVENIENT\nTRUTHS",
			Subtitle:     "Methodological pitfalls, data quality, and the gap between benchmarks and bedside",
			AccentOnRed:  true,
			Citations:    []string{"Section 3: Critical Analysis and Limitations"},
		},
		{
			Number:       23,
			Title:        "Data Leakage",
			SectionLabel: "CRITICAL FLAW",
			Layout:       LayoutHeroStatistic,
			Background:   BackgroundLight,
			HeroStat:     "−28%",
			HeroCaption:  "Accuracy drop when data leakage is corrected",
			AccentOnRed:  true,
			Body: []string{
				"Only 4.5% of published studies use proper subject-level train/test splitting.",
				"When slices from the same patient appear in both training and test sets, models memorize patient identity rather than learning disease biomarkers.",
				"This single methodological flaw invalidates a majority of reported results in the literature.",
			},
			Images: []string{"chart:data_leakage_impact.png"},
			Citations: []string{
				"Wen et al., 2020, Med Image Anal",
				"Yagis et al., 2021, J Neurosci Methods",
			},
		},
		{
			Number:       24,
			Title:        "The Accuracy Paradox",
			SectionLabel: "EVALUATION PITFALL",
			Layout:       LayoutFullBleed,
			Background:   BackgroundLight,
			AccentOnRed:  true,
			Body: []string{
				"Class imbalance is endemic in AD datasets. The Moderate Dementia class represents just ~1% of OASIS subjects.",
				"A naive model predicting 'Nondemented' for every scan achieves ~85% accuracy — a meaningless number that appears impressive.",
				"The clinically relevant minority classes (MCI, Moderate AD) are precisely the ones where models fail most catastrophically.",
				"Solution: Report balanced accuracy, F1-macro, sensitivity per class. Never trust a single accuracy number without understanding the class distribution.",
			},
			Images: []string{"limitations_class_imbalance.png"},
			Citations: []string{
				"OASIS-3 demographics",
				"Wen et al., 2020, Med Image Anal",
			},
		},
		{
			Number:       25,
			Title:        "Domain Shift",
			SectionLabel: "GENERALIZATION GAP",
			Layout:       LayoutHeroStatistic,
			Background:   BackgroundLight,
			HeroStat:     "71%",
			HeroCaption:  "Accuracy on external validation data",
			AccentOnRed:  true,
			Body: []string{
				"Models trained on ADNI and tested on independent datasets lose 20–30% accuracy.",
				"Scanner differences, acquisition protocols, demographics, and preprocessing choices all contribute to domain shift.",
			},
			Columns: []ColumnSpec{
				{Heading: "ADNI → ADNI", Subheading: "~94% accuracy", Body: []string{"(same distribution)"}},
				{Heading: "ADNI → AIBL", Subheading: "~78% accuracy", Body: []string{"(similar demographics)"}},
				{Heading: "ADNI → OASIS", Subheading: "~71% accuracy", Body: []string{"(different scanners)"}},
				{Heading: "ADNI → Clinical", Subheading: "Unknown", Body: []string{"(no systematic testing)"}},
			},
			Citations: []string{
				"Wen et al., 2020, Med Image Anal",
				"Wachinger et al., 2021, NeuroImage",
			},
		},
		{
			Number:       26,
			Title:        "Shortcut Learning",
			SectionLabel: "HIDDEN DANGER",
			Layout:       LayoutDarkCanvas,
			Background:   BackgroundDark,
			AccentOnRed:  true,
			Columns: []ColumnSpec{
				{Heading: "Correct Reasoning",
					Body: []string{
						"Model learns hippocampal atrophy patterns",
						"Focuses on medial temporal lobe",
						"Attention maps align with clinical knowledge",
						"Generalizes to new populations",
					}},
				{Heading: "Shortcut Reasoning",
					Body: []string{
						"Model learns scanner artifacts or head position",
						"Exploits correlation between age and AD prevalence",
						"Attention maps show skull edges or background",
						"Fails catastrophically on new scanners",
					}},
			},
			Body: []string{
				"Without rigorous explainability analysis, we cannot distinguish these two scenarios from accuracy alone.",
			},
			Citations: []string{
				"Geirhos et al., 2020, Nature Machine Intelligence",
				"DeGrave et al., 2021, Nature Machine Intelligence",
			},
		},
		{
			Number:       27,
			Title:        "Label Uncertainty",
			SectionLabel: "GROUND TRUTH PROBLEM",
			Layout:       LayoutHeroStatistic,
			Background:   BackgroundLight,
			HeroStat:     "71%",
			HeroCaption:  "of dementia patients have mixed pathology at autopsy",
			AccentOnRed:  true,
			Body: []string{
				"Clinical labels are inherently noisy. \"AD\" diagnoses are confirmed at autopsy only 60-80% of the time.",
				"Models trained on uncertain labels develop uncertain decision boundaries — garbage in, garbage out.",
			},
			Columns: []ColumnSpec{
				{Heading: "The Label Problem", Body: []string{
					"Clinical diagnosis accuracy: 60-80% vs autopsy gold standard",
					"MCI is a syndrome, not a disease — heterogeneous etiology",
					"Mixed pathology (AD + vascular + Lewy body) is the norm, not the exception",
					"Longitudinal label changes: MCI → Normal reversion rate is 15-20%",
				}},
			},
			Citations: []string{
				"Beach et al., 2012, J Neuropath Exp Neurol",
				"Schneider et al., 2007, Neurology",
			},
		},
		{
			Number:        28,
			Title:         "Recent Advances",
			SectionLabel:  "MOVING FORWARD",
			Layout:        LayoutSplitCompare,
			Background:    BackgroundLight,
			AccentOnGreen: true,
			Columns: []ColumnSpec{
				{Heading: "Multimodal Fusion",
					Body: []string{
						"Combining MRI + PET + genetics + clinical scores yields more robust predictions than any single modality.",
						"Early fusion (concatenate inputs) vs late fusion (combine predictions) vs attention-based fusion (learn optimal weighting).",
						"Challenge: handling missing modalities gracefully — not every patient has PET scans or genetic testing.",
					}},
				{Heading: "Augmentation & Transfer Learning", Image: "Graph.png",
					Body: []string{"Transfer learning taxonomy and augmentation strategies"}},
			},
			Citations: []string{
				"Venugopalan et al., 2021, Sci Rep",
				"Cheplygina et al., 2019, Med Image Anal",
			},
		},
		{
			Number:        29,
			Title:         "Future Directions",
			SectionLabel:  "FUTURE",
			Layout:        LayoutDarkCanvas,
			Background:    BackgroundDark,
			AccentOnGreen: true,
			Columns: []ColumnSpec{
				{Heading: "Standardized Benchmarks",
					Body: []string{"Unified preprocessing pipelines, common evaluation metrics, mandatory external validation. End the reproducibility crisis by making comparison possible."}},
				{Heading: "Clinical Interpretability",
					Body: []string{"Move beyond saliency maps to causal explanations. Clinicians need to understand not just 'where' but 'why'. Integrate explainability into model training, not post-hoc."}},
				{Heading: "Multi-Stage Progression",
					Body: []string{"Shift from binary AD/HC classification to predicting individual trajectories. Model the continuum from preclinical to severe. Personalized risk scoring over time."}},
			},
			Body: []string{
				"The field must mature from 'can we classify?' to 'can we trust, deploy, and benefit patients?'",
			},
			Citations: []string{
				"Topol, 2019, Nature Medicine",
				"Kelly et al., 2019, BMC Medicine",
			},
		},
		{
			Number:     30,
			Title:      "The Methodological Triad",
			Layout:     LayoutStatement,
			Background: BackgroundDark,
			Statement:  "The Methodological Triad",
			Columns: []ColumnSpec{
				{Heading: "1", Subheading: "Subject-Level Splitting",
					Body: []string{"Never allow data from the same patient in both train and test sets. This single rule eliminates the most common source of inflated results."}},
				{Heading: "2", Subheading: "External Validation",
					Body: []string{"Test on independent datasets from different sites, scanners, and demographics. Internal cross-validation is necessary but insufficient."}},
				{Heading: "3", Subheading: "Confounder Control",
					Body: []string{"Account for age, sex, education, scanner effects, and head size. Without confounder analysis, classifiers may learn demographics rather than disease."}},
			},
			Citations: []string{
				"Wen et al., 2020, Med Image Anal",
				"Poldrack et al., 2020, Nature Reviews Neuroscience",
			},
		},
		{
			Number:     31,
			Title:      "Conclusion",
			Layout:     LayoutStatement,
			Background: BackgroundDark,
			Statement:  "Models are powerful.\nData is insufficient.\nTrust is unearned.",
			Subtitle: "The path from benchmark accuracy to clinical deployment requires not just better architectures, " +
				"but better data practices, honest evaluation, and genuine collaboration between computer scientists and clinicians.",
			Citations: []string{"Conclusion  •  AI Alzheimer and Dementia Classification"},
		},
		{
			Number:     32,
			Title:      "Thank You",
			Layout:     LayoutStatement,
			Background: BackgroundDark,
			Statement:  "Thank You",
			Subtitle:   "Questions & Discussion",
			Body: []string{
				"Gavriilidis Paraskevas",
				"Department of Informatics and Computer Engineering",
				"University of West Attica, 2025",
			},
			Images:    []string{"logo_en.png"},
			Citations: []string{"AI Alzheimer and Dementia Classification  •  Thesis Defense  •  University of West Attica"},
		},
	}
}
